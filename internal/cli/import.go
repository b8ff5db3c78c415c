package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON export into the wiki",
		Long: "Parse a JSON export and merge it into the wiki. Imported pages win on\n" +
			"title collision. A malformed file aborts the import entirely; nothing\n" +
			"is merged. Asks for confirmation unless --yes is given.",
		Args: cobra.ExactArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			// Validate before prompting so a malformed file fails fast.
			imported, err := wiki.ParseImport(raw)
			if err != nil {
				return err
			}

			if !confirm(cmd, fmt.Sprintf("Merge %d pages into the wiki? Existing pages with the same title will be overwritten.", len(imported))) {
				return nil
			}
			if _, err := svc.ImportPages(store, imported); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pages\n", len(imported))
			return nil
		}),
	}
}
