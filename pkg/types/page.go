package types

import (
	"errors"
	"sort"
	"time"
)

// Page is a titled unit of markdown content with a last-modified timestamp.
type Page struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Updated int64  `json:"updated"` // Milliseconds since the Unix epoch.
}

// Store maps page titles to pages. It is the unit of persistence: every
// mutation produces a new snapshot that is persisted whole. After any
// successful mutation each key equals the Title field of its page, and
// keys are unique with case-sensitive exact matching.
type Store map[string]Page

// Clone returns an independent shallow copy of the store. Transform
// functions clone before mutating so callers keep the prior snapshot.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	for title, page := range s {
		out[title] = page
	}
	return out
}

// Titles returns all page titles in ascending lexicographic (byte-wise)
// order. The result is never nil.
func (s Store) Titles() []string {
	titles := make([]string, 0, len(s))
	for title := range s {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// TimestampMillis converts a time to the wire-format timestamp,
// milliseconds since the Unix epoch.
func TimestampMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// Page and store operation errors.
var (
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrDuplicateTitle = errors.New("a page with that title already exists")
	ErrNotFound       = errors.New("page not found")
	ErrInvalidImport  = errors.New("invalid import format")
)
