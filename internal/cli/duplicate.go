package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <title> [new-name]",
		Short: "Copy a page under a new name",
		Long:  "Copy a page's content verbatim under a new name. Without an explicit name, \"<title> (copy)\" is used.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			newName := wiki.DefaultCopyName(args[0])
			if len(args) == 2 {
				newName = args[1]
			}
			if _, err := svc.Duplicate(store, args[0], newName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicated %q as %q\n", args[0], strings.TrimSpace(newName))
			return nil
		}),
	}
}
