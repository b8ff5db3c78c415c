package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List page titles, optionally filtered",
		Long:  "List all page titles in lexicographic order. With a query, keep only pages whose title or content contains it (case-insensitive).",
		Args:  cobra.MaximumNArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			for _, title := range wiki.Filter(store, query) {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		}),
	}
}
