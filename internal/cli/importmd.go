package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/internal/mdfile"
	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newImportMdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-md <file>...",
		Short: "Merge markdown files into the wiki",
		Long: "Read markdown files as pages and merge them into the wiki. A YAML\n" +
			"frontmatter \"title\" names the page; otherwise the file name (without\n" +
			"extension) is used. Asks for confirmation unless --yes is given.",
		Args: cobra.MinimumNArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			fragment, err := mdfile.ReadPages(args, time.Now())
			if err != nil {
				return err
			}

			if !confirm(cmd, fmt.Sprintf("Merge %d pages into the wiki? Existing pages with the same title will be overwritten.", len(fragment))) {
				return nil
			}
			if _, err := svc.ImportPages(store, fragment); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pages\n", len(fragment))
			return nil
		}),
	}
}
