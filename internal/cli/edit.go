package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newEditCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "edit <title>",
		Short: "Replace a page's content",
		Long:  "Replace the content of an existing page with the contents of a file (-f) or standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			var content string
			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("reading %s: %w", fromFile, err)
				}
				content = string(data)
			} else {
				var err error
				content, err = readAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			if _, err := svc.SaveEdit(store, args[0], content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q\n", args[0])
			return nil
		}),
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read the new content from a file instead of stdin")
	return cmd
}
