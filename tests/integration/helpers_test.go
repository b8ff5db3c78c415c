// Package integration provides end-to-end tests for the kpalwiki page
// store across both storage backends.
package integration

import (
	"testing"
	"time"

	"github.com/mesh-intelligence/kpalwiki/internal/jsonstore"
	"github.com/mesh-intelligence/kpalwiki/internal/sqlitestore"
	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

// backends enumerates the storage implementations under test. Each
// constructor gets its own temp directory for isolation.
var backends = []struct {
	name string
	open func(t *testing.T) types.Storage
}{
	{
		name: "json",
		open: func(t *testing.T) types.Storage {
			t.Helper()
			return jsonstore.New(t.TempDir())
		},
	},
	{
		name: "sqlite",
		open: func(t *testing.T) types.Storage {
			t.Helper()
			b, err := sqlitestore.Open(t.TempDir())
			if err != nil {
				t.Fatalf("Open sqlite backend: %v", err)
			}
			t.Cleanup(func() { b.Close() })
			return b
		},
	},
}

// fixedNow keeps timestamps deterministic across the suite.
var fixedNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

// setupService creates a Service over the given backend with a fixed clock.
func setupService(t *testing.T, open func(t *testing.T) types.Storage) *wiki.Service {
	t.Helper()
	return wiki.NewService(open(t), wiki.WithClock(func() time.Time { return fixedNow }))
}

// mustLoad loads the store or fails the test.
func mustLoad(t *testing.T, svc *wiki.Service) types.Store {
	t.Helper()
	store, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

// mustCreate creates a page or fails the test.
func mustCreate(t *testing.T, svc *wiki.Service, store types.Store, title string) types.Store {
	t.Helper()
	next, err := svc.Create(store, title)
	if err != nil {
		t.Fatalf("Create %q: %v", title, err)
	}
	return next
}
