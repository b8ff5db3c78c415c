package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all pages and restore the seed set",
		Long:  "Discard the entire wiki and restore the two starter pages. Asks for confirmation unless --yes is given.",
		Args:  cobra.NoArgs,
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			if !confirm(cmd, fmt.Sprintf("Discard all %d pages and restore the starter set? This cannot be undone.", len(store))) {
				return nil
			}
			if _, err := svc.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wiki reset to starter pages")
			return nil
		}),
	}
}
