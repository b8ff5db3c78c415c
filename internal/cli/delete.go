package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a page",
		Long:  "Delete a page permanently. Asks for confirmation unless --yes is given.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			if !confirm(cmd, fmt.Sprintf("Delete page %q? This cannot be undone.", args[0])) {
				return nil
			}
			if _, err := svc.Remove(store, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
			return nil
		}),
	}
}
