package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-title> <new-title>",
		Short: "Rename a page",
		Args:  cobra.ExactArgs(2),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			if _, err := svc.Rename(store, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", args[0], strings.TrimSpace(args[1]))
			return nil
		}),
	}
}
