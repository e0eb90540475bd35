package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/forager/internal/explorer"
)

func newIngredientsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ingredients",
		Short: "List the ingredients offered in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredients := explorer.Ingredients()
			rows := make([][]string, 0, len(ingredients))
			for i, ing := range ingredients {
				rows = append(rows, []string{strconv.Itoa(i + 1), explorer.IngredientLabel(ing), ing})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Ingredient", "Query"}, rows, []columnAlignment{alignRight}))
			return nil
		},
	}
}
