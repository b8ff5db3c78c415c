// Package jsonstore persists the page store as a single JSON document on
// disk. The whole mapping lives in one slot; every save overwrites it.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// storeFileName is the single slot holding the serialized store.
const storeFileName = "wiki.json"

// Store implements types.Storage over one JSON file in a data directory.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir. The directory is created on the
// first save, not here.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Path returns the location of the storage slot.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, storeFileName)
}

// Load reads the persisted store. A missing file means no prior state
// and returns (nil, nil). A file that exists but does not parse as an
// object of pages is reported as ErrCorruptData; callers recover to the
// seed set.
func (s *Store) Load() (types.Store, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(), err)
	}

	var store types.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptData, err)
	}
	if store == nil {
		// A literal "null" slot carries no pages; treat it as absence.
		return nil, nil
	}
	return store, nil
}

// Save overwrites the slot with the full store using the temp-file,
// sync, rename pattern so a crash mid-write never leaves a torn slot.
func (s *Store) Save(store types.Store) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("serializing store: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, ".wiki-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
