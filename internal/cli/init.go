package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/internal/paths"
	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize wiki storage",
		Long:  "Create the configuration and data directories, write a default config, and seed the starter pages.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := writeConfigIfMissing(configDir, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	storage, closer, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer closer()

	// Seed the starter pages only when no readable prior state exists;
	// init on an existing wiki must not touch its pages.
	svc := wiki.NewService(storage, wiki.WithLogger(newLogger()))
	existing, err := storage.Load()
	switch {
	case err != nil && !errors.Is(err, types.ErrCorruptData):
		return err
	case existing == nil:
		if _, err := svc.Reset(); err != nil {
			return fmt.Errorf("seed starter pages: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wiki initialized (backend: %s, data: %s)\n", cfg.Backend, cfg.DataDir)
	return nil
}
