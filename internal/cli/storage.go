// Storage wiring for the kpalwiki CLI.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/internal/jsonstore"
	"github.com/mesh-intelligence/kpalwiki/internal/sqlitestore"
	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

// openStorage builds the configured storage backend. The returned
// cleanup function is always safe to call.
func openStorage(cfg types.Config) (types.Storage, func(), error) {
	switch cfg.Backend {
	case types.BackendJSON:
		return jsonstore.New(cfg.DataDir), func() {}, nil
	case types.BackendSQLite:
		backend, err := sqlitestore.Open(cfg.DataDir)
		if err != nil {
			return nil, func() {}, err
		}
		return backend, func() { backend.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("%w: %s", types.ErrBackendUnknown, cfg.Backend)
	}
}

// runWithService resolves config, opens storage, and hands a Service and
// the loaded store to fn. Used by every command that touches pages.
func runWithService(fn func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		storage, closer, err := openStorage(cfg)
		if err != nil {
			return err
		}
		defer closer()

		svc := wiki.NewService(storage, wiki.WithLogger(newLogger()))
		store, err := svc.Load()
		if err != nil {
			return err
		}
		return fn(cmd, args, svc, store)
	}
}

// readAll reads everything from r, for content piped on stdin.
func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
