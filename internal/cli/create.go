package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new page with scaffold content",
		Args:  cobra.ExactArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			if _, err := svc.Create(store, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q\n", strings.TrimSpace(args[0]))
			return nil
		}),
	}
}
