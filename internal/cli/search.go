package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search pages by title or content substring",
		Args:  cobra.ExactArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			for _, title := range wiki.Filter(store, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		}),
	}
}
