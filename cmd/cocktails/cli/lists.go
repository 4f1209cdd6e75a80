// ABOUTME: lists command fetching ingredient and category names concurrently
// ABOUTME: Either failure cancels the other request

package cli

import (
	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// namesOutput is the JSON shape of the lists command
type namesOutput struct {
	Ingredients []string `json:"ingredients"`
	Categories  []string `json:"categories"`
}

func NewListsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List every ingredient and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd, nil)
			if err != nil {
				return err
			}

			var out namesOutput
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				names, err := client.ListIngredients(ctx)
				out.Ingredients = names
				return err
			})
			g.Go(func() error {
				names, err := client.ListCategories(ctx)
				out.Categories = names
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.output == "json" {
				return writeJSON(w, out)
			}
			if err := writeNames(w, "Categories", out.Categories); err != nil {
				return err
			}
			return writeNames(w, "Ingredients", out.Ingredients)
		},
	}
}
