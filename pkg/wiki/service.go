package wiki

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// Service applies store transforms and persists the resulting snapshot
// through an injected Storage. Every successful mutation is followed by
// a synchronous full persist; on a validation failure nothing is saved
// and the caller keeps the prior store value.
type Service struct {
	storage types.Storage
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for diagnostics. The default logs to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service persisting through storage.
func NewService(storage types.Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted store. Missing state and unreadable state
// both fall back to the seed set; corruption is logged as a diagnostic
// and never surfaced to the caller. Other storage failures (for example
// permission errors) are returned as-is.
func (s *Service) Load() (types.Store, error) {
	store, err := s.storage.Load()
	if err != nil {
		if errors.Is(err, types.ErrCorruptData) {
			s.logger.Warn("persisted store unreadable, starting from seed pages", "error", err)
			return Seed(s.now()), nil
		}
		return nil, err
	}
	if store == nil {
		s.logger.Debug("no persisted store found, starting from seed pages")
		return Seed(s.now()), nil
	}
	return store, nil
}

// persist saves the snapshot and returns it, or returns the prior store
// when the save fails.
func (s *Service) persist(prior, next types.Store) (types.Store, error) {
	if err := s.storage.Save(next); err != nil {
		return prior, err
	}
	return next, nil
}

// Create inserts a new scaffold page and persists the snapshot.
func (s *Service) Create(store types.Store, title string) (types.Store, error) {
	next, err := Create(store, title, s.now())
	if err != nil {
		return store, err
	}
	return s.persist(store, next)
}

// SaveEdit replaces a page's content and persists the snapshot.
func (s *Service) SaveEdit(store types.Store, title, content string) (types.Store, error) {
	next, err := SaveEdit(store, title, content, s.now())
	if err != nil {
		return store, err
	}
	return s.persist(store, next)
}

// Remove deletes a page and persists the snapshot. Removing a missing
// title persists an unchanged snapshot; the operation stays idempotent.
func (s *Service) Remove(store types.Store, title string) (types.Store, error) {
	return s.persist(store, Remove(store, title))
}

// Rename moves a page under a new title and persists the snapshot.
func (s *Service) Rename(store types.Store, oldTitle, newTitleRaw string) (types.Store, error) {
	next, err := Rename(store, oldTitle, newTitleRaw)
	if err != nil {
		return store, err
	}
	return s.persist(store, next)
}

// Duplicate copies a page under a new name and persists the snapshot.
func (s *Service) Duplicate(store types.Store, title, newName string) (types.Store, error) {
	next, err := Duplicate(store, title, newName, s.now())
	if err != nil {
		return store, err
	}
	return s.persist(store, next)
}

// Import parses raw JSON, merges it into the store (imported pages win
// per key), and persists the snapshot. A parse failure aborts the whole
// import; no partial merge is applied. Confirmation is the caller's
// responsibility and must happen before calling Import.
func (s *Service) Import(store types.Store, raw []byte) (types.Store, error) {
	imported, err := ParseImport(raw)
	if err != nil {
		return store, err
	}
	return s.persist(store, Merge(store, imported))
}

// ImportPages merges an already-parsed page set into the store and
// persists the snapshot.
func (s *Service) ImportPages(store, imported types.Store) (types.Store, error) {
	return s.persist(store, Merge(store, imported))
}

// Reset discards the current store, replacing it with the seed set, and
// persists the replacement.
func (s *Service) Reset() (types.Store, error) {
	seed := Seed(s.now())
	if err := s.storage.Save(seed); err != nil {
		return nil, err
	}
	return seed, nil
}
