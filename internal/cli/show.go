package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/internal/render"
	"github.com/mesh-intelligence/kpalwiki/pkg/types"
	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func newShowCmd() *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Print a page's markdown, or its rendered HTML",
		Args:  cobra.ExactArgs(1),
		RunE: runWithService(func(cmd *cobra.Command, args []string, svc *wiki.Service, store types.Store) error {
			page, exists := store[args[0]]
			if !exists {
				return fmt.Errorf("%w: %s", types.ErrNotFound, args[0])
			}
			if !asHTML {
				fmt.Fprintln(cmd.OutOrStdout(), page.Content)
				return nil
			}
			html, err := render.New().Render(page.Content)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), html)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "render the page markdown to HTML")
	return cmd
}
