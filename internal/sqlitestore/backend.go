// Package sqlitestore persists the page store in a SQLite database.
// Semantically it is still a single slot: every save replaces the whole
// pages table in one transaction.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file inside the data directory.
const dbFileName = "wiki.db"

// metaKeySavedAt marks that a snapshot has been persisted at least once.
// Without it an initialized-but-never-saved database would be
// indistinguishable from a deliberately emptied store.
const metaKeySavedAt = "saved_at"

// Backend implements types.Storage over a SQLite database.
type Backend struct {
	dataDir string
	db      *sql.DB
}

// Open creates the data directory if needed, opens the database, and
// ensures the schema exists. A file that is present but not a usable
// database is reported as ErrCorruptData.
func Open(dataDir string) (*Backend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptData, err)
	}

	return &Backend{dataDir: dataDir, db: db}, nil
}

// Close releases the database connection. Idempotent.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// Load reads the persisted store. Returns (nil, nil) when no snapshot
// has ever been saved.
func (b *Backend) Load() (types.Store, error) {
	var saved string
	err := b.db.QueryRow("SELECT value FROM meta WHERE key = ?", metaKeySavedAt).Scan(&saved)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptData, err)
	}

	rows, err := b.db.Query("SELECT title, content, updated FROM pages")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptData, err)
	}
	defer rows.Close()

	store := types.Store{}
	for rows.Next() {
		var p types.Page
		if err := rows.Scan(&p.Title, &p.Content, &p.Updated); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrCorruptData, err)
		}
		store[p.Title] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptData, err)
	}
	return store, nil
}

// Save replaces the whole pages table with the snapshot in one
// transaction, mirroring the full-overwrite semantics of a single slot.
func (b *Backend) Save(store types.Store) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM pages"); err != nil {
		return fmt.Errorf("clearing pages: %w", err)
	}
	for title, page := range store {
		if _, err := tx.Exec(
			"INSERT INTO pages (title, content, updated) VALUES (?, ?, ?)",
			title, page.Content, page.Updated); err != nil {
			return fmt.Errorf("inserting page %q: %w", title, err)
		}
	}

	now := strconv.FormatInt(types.TimestampMillis(time.Now()), 10)
	if _, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		metaKeySavedAt, now); err != nil {
		return fmt.Errorf("recording save marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}
