package wiki

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func seedStore() types.Store {
	return Seed(testNow)
}

func TestSeed(t *testing.T) {
	store := seedStore()

	require.Len(t, store, 2)
	for _, title := range []string{SeedTitleHome, SeedTitleAbout} {
		page, ok := store[title]
		require.True(t, ok, "missing seed page %q", title)
		assert.Equal(t, title, page.Title)
		assert.NotEmpty(t, page.Content)
		assert.Equal(t, types.TimestampMillis(testNow), page.Updated)
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "new title succeeds", title: "Notes"},
		{name: "surrounding whitespace trimmed", title: "  Ideas  "},
		{name: "empty title rejected", title: "", wantErr: types.ErrEmptyTitle},
		{name: "whitespace-only title rejected", title: "   ", wantErr: types.ErrEmptyTitle},
		{name: "collision with seed page rejected", title: "Home", wantErr: types.ErrDuplicateTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seedStore()
			next, err := Create(store, tt.title, testNow)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, store, next, "store must be unchanged on failure")
				return
			}

			require.NoError(t, err)
			title := "Notes"
			if tt.title == "  Ideas  " {
				title = "Ideas"
			}
			page, ok := next[title]
			require.True(t, ok)
			assert.Equal(t, title, page.Title)
			assert.Equal(t, ScaffoldContent(title), page.Content)
			assert.Equal(t, types.TimestampMillis(testNow), page.Updated)
			assert.Len(t, store, 2, "input store must not be mutated")
		})
	}
}

func TestCreateScaffoldContent(t *testing.T) {
	store, err := Create(seedStore(), "Notes", testNow)
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n\nWrite your content here.", store["Notes"].Content)
	assert.ElementsMatch(t, []string{"About", "Home", "Notes"}, store.Titles())
}

func TestSaveEdit(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("replaces content and refreshes timestamp", func(t *testing.T) {
		store := seedStore()
		next, err := SaveEdit(store, "Home", "updated body", later)
		require.NoError(t, err)
		assert.Equal(t, "updated body", next["Home"].Content)
		assert.Equal(t, types.TimestampMillis(later), next["Home"].Updated)
		assert.Equal(t, next["About"], store["About"], "other pages untouched")
	})

	t.Run("missing title is an explicit error", func(t *testing.T) {
		store := seedStore()
		next, err := SaveEdit(store, "Ghost", "body", later)
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.Equal(t, store, next)
		_, exists := next["Ghost"]
		assert.False(t, exists, "no record may be fabricated for a stale title")
	})
}

func TestRemove(t *testing.T) {
	store := seedStore()

	next := Remove(store, "Home")
	assert.Len(t, next, 1)
	_, exists := next["Home"]
	assert.False(t, exists)
	assert.Len(t, store, 2, "input store must not be mutated")

	// Idempotent in effect: removing a nonexistent title changes nothing.
	again := Remove(next, "Home")
	assert.Equal(t, next, again)

	empty := Remove(Remove(store, "Home"), "About")
	assert.Empty(t, empty)
}

func TestRename(t *testing.T) {
	tests := []struct {
		name     string
		oldTitle string
		newTitle string
		wantErr  error
	}{
		{name: "moves page under new key", oldTitle: "Home", newTitle: "Start"},
		{name: "trims new title", oldTitle: "Home", newTitle: "  Start  "},
		{name: "empty target rejected", oldTitle: "Home", newTitle: "   ", wantErr: types.ErrEmptyTitle},
		{name: "missing source rejected", oldTitle: "Ghost", newTitle: "Start", wantErr: types.ErrNotFound},
		{name: "collision rejected", oldTitle: "Home", newTitle: "About", wantErr: types.ErrDuplicateTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seedStore()
			next, err := Rename(store, tt.oldTitle, tt.newTitle)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, store, next)
				return
			}

			require.NoError(t, err)
			page, ok := next["Start"]
			require.True(t, ok)
			assert.Equal(t, "Start", page.Title, "embedded title must follow the key")
			assert.Equal(t, store["Home"].Content, page.Content)
			assert.Equal(t, store["Home"].Updated, page.Updated, "rename must not refresh the timestamp")
			_, exists := next["Home"]
			assert.False(t, exists)
		})
	}
}

func TestRenameSameTitleIsNoOp(t *testing.T) {
	store := seedStore()
	next, err := Rename(store, "Home", "Home")
	assert.NoError(t, err)
	assert.Equal(t, store, next)
}

func TestRenameRoundTrip(t *testing.T) {
	store := seedStore()

	renamed, err := Rename(store, "Home", "Start")
	require.NoError(t, err)
	restored, err := Rename(renamed, "Start", "Home")
	require.NoError(t, err)

	assert.Equal(t, store, restored, "rename there and back restores the original store")
}

func TestDuplicate(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("copies content verbatim with fresh timestamp", func(t *testing.T) {
		store := seedStore()
		next, err := Duplicate(store, "Home", DefaultCopyName("Home"), later)
		require.NoError(t, err)

		copyPage, ok := next["Home (copy)"]
		require.True(t, ok)
		assert.Equal(t, "Home (copy)", copyPage.Title)
		assert.Equal(t, store["Home"].Content, copyPage.Content)
		assert.Equal(t, types.TimestampMillis(later), copyPage.Updated)
		assert.Equal(t, store["Home"], next["Home"], "source page untouched")
	})

	t.Run("failures leave the store unchanged", func(t *testing.T) {
		store := seedStore()
		for _, tc := range []struct {
			title, newName string
			wantErr        error
		}{
			{"Home", "  ", types.ErrEmptyTitle},
			{"Home", "About", types.ErrDuplicateTitle},
			{"Ghost", "Copy", types.ErrNotFound},
		} {
			next, err := Duplicate(store, tc.title, tc.newName, later)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, store, next)
		}
	})
}

func TestMerge(t *testing.T) {
	store := seedStore()
	imported := types.Store{
		"About": {Title: "About", Content: "X", Updated: 1},
		"Notes": {Title: "Notes", Content: "# Notes", Updated: 2},
	}

	merged := Merge(store, imported)

	require.Len(t, merged, 3)
	assert.Equal(t, store["Home"], merged["Home"], "pages absent from the import are unchanged")
	assert.Equal(t, "X", merged["About"].Content, "imported version wins on collision")
	assert.Equal(t, int64(1), merged["About"].Updated, "override is by key, not by timestamp")
	assert.Equal(t, "# Notes", merged["Notes"].Content)
	assert.Len(t, store, 2, "input store must not be mutated")
}

func TestMergeNormalizesDriftedTitles(t *testing.T) {
	store := seedStore()
	imported := types.Store{
		"Renamed": {Title: "Original", Content: "body", Updated: 5},
	}

	merged := Merge(store, imported)

	assert.Equal(t, "Renamed", merged["Renamed"].Title, "key wins over the embedded title")
	for title, page := range merged {
		assert.Equal(t, title, page.Title)
	}
}
