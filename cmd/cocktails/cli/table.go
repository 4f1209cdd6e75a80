// ABOUTME: table command loading a name search into the result store and filtering it
// ABOUTME: Every filter flag narrows the displayed rows conjunctively

package cli

import (
	"errors"

	"cocktails-app-api/api/dto/requests"
	"cocktails-app-api/core/filter"

	"github.com/spf13/cobra"
)

func NewTableCommand(opts *globalOptions) *cobra.Command {
	var name string
	var wide bool
	filters := map[filter.Field]*string{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Load drinks by name and filter them",
		Long:  "Loads the drinks matching --name and narrows them by case-insensitive substring filters on id, category, ingredients and instructions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := &TextView{wide: wide}
			client, err := opts.newClient(cmd, view)
			if err != nil {
				return err
			}

			if err := client.LoadTable(cmd.Context(), name); err != nil {
				if msg := view.Message(); msg != "" {
					return errors.New(msg)
				}
				return err
			}

			for _, field := range filter.Fields {
				if value := *filters[field]; value != "" {
					client.Table().SetField(field, value)
				}
			}

			return view.Render(cmd.OutOrStdout(), opts.output)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", requests.DefaultTableSearch, "drink name to search for")
	cmd.Flags().BoolVarP(&wide, "wide", "w", false, "include glass and instructions columns")
	for _, field := range filter.Fields {
		filters[field] = cmd.Flags().String(string(field), "", "filter on "+string(field)+" (substring, case-insensitive)")
	}

	return cmd
}
