package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

const modulePath = "github.com/mesh-intelligence/kpalwiki"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the kpalwiki version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "kpalwiki v%s\nmodule: %s\n", wiki.Version, modulePath)
			return nil
		},
	}
}
