// ABOUTME: Lookup commands mapping one-to-one onto the upstream drink operations
// ABOUTME: Prints results as a text table or JSON depending on --output

package cli

import (
	"cocktails-app-api/api/dto/mappers"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/present"

	"github.com/spf13/cobra"
)

func NewLookupCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id>",
		Short: "Show one drink by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd, nil)
			if err != nil {
				return err
			}
			drink, err := client.LookupByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printDrink(cmd, opts, drink)
		},
	}
}

func NewSearchCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search drinks by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd, nil)
			if err != nil {
				return err
			}
			drinks, err := client.SearchByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printDrinks(cmd, opts, drinks)
		},
	}
}

func NewByIngredientCommand(opts *globalOptions) *cobra.Command {
	var first bool

	cmd := &cobra.Command{
		Use:   "by-ingredient <name>...",
		Short: "List drinks containing an ingredient",
		Long:  "Lists drinks containing the first given ingredient. Additional ingredients are accepted but not used for matching.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd, nil)
			if err != nil {
				return err
			}
			if first {
				drink, err := client.FirstByIngredient(cmd.Context(), args...)
				if err != nil {
					return err
				}
				return printDrink(cmd, opts, drink)
			}
			drinks, err := client.FilterByIngredient(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return printDrinks(cmd, opts, drinks)
		},
	}

	cmd.Flags().BoolVar(&first, "first", false, "show only the first matching drink")

	return cmd
}

func NewByAlcoholicCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "by-alcoholic <type>",
		Short:   "List drinks by alcoholic type",
		Example: "  cocktails by-alcoholic Non_Alcoholic",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd, nil)
			if err != nil {
				return err
			}
			drinks, err := client.FilterByAlcoholic(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printDrinks(cmd, opts, drinks)
		},
	}
}

func printDrink(cmd *cobra.Command, opts *globalOptions, drink *domain.Cocktail) error {
	if opts.output == "json" {
		return writeJSON(cmd.OutOrStdout(), mappers.ToCocktailResponse(drink))
	}
	return writeDetail(cmd.OutOrStdout(), drink)
}

func printDrinks(cmd *cobra.Command, opts *globalOptions, drinks []domain.Cocktail) error {
	if opts.output == "json" {
		return writeJSON(cmd.OutOrStdout(), mappers.ToCocktailListResponse(drinks))
	}
	return writeRows(cmd.OutOrStdout(), present.ToRows(drinks), false)
}
