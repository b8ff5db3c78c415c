package types

import "errors"

// Storage persists a complete store snapshot to a local medium.
// Save overwrites the prior contents entirely; there is no partial write.
type Storage interface {
	// Load reads the persisted store. A (nil, nil) return means no prior
	// state exists; callers are expected to fall back to the seed set.
	// Unreadable state is reported as an error wrapping ErrCorruptData.
	Load() (Store, error)

	// Save serializes the full store, replacing whatever was stored before.
	Save(store Store) error
}

// ErrCorruptData marks persisted state that exists but cannot be parsed.
// Callers treat it as absence: recover to the seed set and log, never
// surface it to the user.
var ErrCorruptData = errors.New("corrupt persisted data")
