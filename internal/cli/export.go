package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole wiki as pretty-printed JSON",
		Args:  cobra.NoArgs,
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			data, err := wiki.ExportAll(store)
			if err != nil {
				return err
			}
			if outPath == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages to %s\n", len(store), outPath)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", wiki.ExportFileName, "output file (\"-\" for stdout)")
	return cmd
}
