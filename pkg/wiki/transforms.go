package wiki

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// Seed page titles used on first run, unreadable persisted state, and reset.
const (
	SeedTitleHome  = "Home"
	SeedTitleAbout = "About"
)

const seedHomeContent = `# Home

Welcome to your personal wiki. Create a page to get started.`

const seedAboutContent = `# About

kpalwiki is a minimal personal wiki. Pages are plain markdown, stored
locally and searched by substring.`

// Seed returns the fixed two-page starter store.
func Seed(now time.Time) types.Store {
	ts := types.TimestampMillis(now)
	return types.Store{
		SeedTitleHome:  {Title: SeedTitleHome, Content: seedHomeContent, Updated: ts},
		SeedTitleAbout: {Title: SeedTitleAbout, Content: seedAboutContent, Updated: ts},
	}
}

// ScaffoldContent returns the initial content for a newly created page.
func ScaffoldContent(title string) string {
	return fmt.Sprintf("# %s\n\nWrite your content here.", title)
}

// Create inserts a new page with scaffold content under the trimmed title.
// Returns ErrEmptyTitle when the trimmed title is empty and
// ErrDuplicateTitle when a page with that exact title already exists.
func Create(store types.Store, title string, now time.Time) (types.Store, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return store, types.ErrEmptyTitle
	}
	if _, exists := store[title]; exists {
		return store, types.ErrDuplicateTitle
	}

	next := store.Clone()
	next[title] = types.Page{
		Title:   title,
		Content: ScaffoldContent(title),
		Updated: types.TimestampMillis(now),
	}
	return next, nil
}

// SaveEdit replaces the content of the named page and refreshes its
// Updated timestamp. Returns ErrNotFound when no page has that title;
// a stale title must never fabricate a new record.
func SaveEdit(store types.Store, title, content string, now time.Time) (types.Store, error) {
	page, exists := store[title]
	if !exists {
		return store, types.ErrNotFound
	}

	page.Content = content
	page.Updated = types.TimestampMillis(now)

	next := store.Clone()
	next[title] = page
	return next, nil
}

// Remove deletes the named page. Removing a title that does not exist
// leaves the store observably unchanged; it is not an error.
func Remove(store types.Store, title string) types.Store {
	if _, exists := store[title]; !exists {
		return store
	}
	next := store.Clone()
	delete(next, title)
	return next
}

// Rename moves a page under a new trimmed title, rewriting the embedded
// Title field to match. The Updated timestamp is not refreshed. Renaming
// to the same title is a no-op, not an error. Returns ErrEmptyTitle,
// ErrNotFound, or ErrDuplicateTitle on the respective failures.
func Rename(store types.Store, oldTitle, newTitleRaw string) (types.Store, error) {
	newTitle := strings.TrimSpace(newTitleRaw)
	if newTitle == "" {
		return store, types.ErrEmptyTitle
	}
	if newTitle == oldTitle {
		return store, nil
	}
	page, exists := store[oldTitle]
	if !exists {
		return store, types.ErrNotFound
	}
	if _, exists := store[newTitle]; exists {
		return store, types.ErrDuplicateTitle
	}

	page.Title = newTitle

	next := store.Clone()
	delete(next, oldTitle)
	next[newTitle] = page
	return next, nil
}

// DefaultCopyName is the suggested title for a duplicated page.
func DefaultCopyName(title string) string {
	return title + " (copy)"
}

// Duplicate copies the named page verbatim under newName, refreshing the
// copy's Updated timestamp. Returns ErrNotFound when the source page is
// missing, ErrEmptyTitle when the trimmed new name is empty, and
// ErrDuplicateTitle on collision.
func Duplicate(store types.Store, title, newName string, now time.Time) (types.Store, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return store, types.ErrEmptyTitle
	}
	page, exists := store[title]
	if !exists {
		return store, types.ErrNotFound
	}
	if _, exists := store[newName]; exists {
		return store, types.ErrDuplicateTitle
	}

	page.Title = newName
	page.Updated = types.TimestampMillis(now)

	next := store.Clone()
	next[newName] = page
	return next, nil
}

// Merge combines an imported page set into the store. For any title
// present in both, the imported version wins; the override is by key,
// never by timestamp. Imported records are stored with their Title field
// rewritten to their key so the store invariant holds.
func Merge(store, imported types.Store) types.Store {
	next := store.Clone()
	for title, page := range imported {
		page.Title = title
		next[title] = page
	}
	return next
}
