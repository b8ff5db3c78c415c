package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreClone(t *testing.T) {
	original := Store{
		"Home":  {Title: "Home", Content: "# Home", Updated: 1},
		"About": {Title: "About", Content: "# About", Updated: 2},
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone["Notes"] = Page{Title: "Notes"}
	clone["Home"] = Page{Title: "Home", Content: "changed", Updated: 3}

	assert.Len(t, original, 2)
	assert.Equal(t, "# Home", original["Home"].Content)
}

func TestStoreTitles(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		want  []string
	}{
		{
			name:  "empty store yields empty non-nil slice",
			store: Store{},
			want:  []string{},
		},
		{
			name: "titles sorted byte-wise ascending",
			store: Store{
				"banana": {Title: "banana"},
				"Apple":  {Title: "Apple"},
				"Home":   {Title: "Home"},
			},
			want: []string{"Apple", "Home", "banana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.store.Titles()
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestampMillis(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	assert.Equal(t, ts.UnixMilli(), TimestampMillis(ts))
	assert.Equal(t, int64(0), TimestampMillis(time.Unix(0, 0)))
}
