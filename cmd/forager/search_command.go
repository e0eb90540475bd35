package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/state"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <ingredient>",
		Short: "List recipes that use an ingredient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredient := args[0]
			return runSearch(cmd, ctx, asJSON, func(c context.Context, coord *explorer.Coordinator) state.Snapshot {
				return coord.Search(c, ingredient)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

// searchFunc runs one search through the coordinator.
type searchFunc func(context.Context, *explorer.Coordinator) state.Snapshot

// runDefaultSearch searches the configured default ingredient.
func runDefaultSearch(cmd *cobra.Command, ctx *commandContext) error {
	return runSearch(cmd, ctx, false, func(c context.Context, coord *explorer.Coordinator) state.Snapshot {
		return coord.Init(c)
	})
}

// runSearch runs search and prints the outcome.
func runSearch(cmd *cobra.Command, ctx *commandContext, asJSON bool, search searchFunc) error {
	svc, err := ctx.setup()
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	snap := search(cmd.Context(), svc.Coordinator)

	if snap.Phase == state.PhaseFailed {
		return fmt.Errorf("search %q: %s: %w", snap.Ingredient, snap.Message, snap.LastError)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, searchJSON(snap))
	}
	if snap.Phase == state.PhaseEmpty {
		fmt.Fprintln(out, snap.Message)
		return nil
	}

	rows := make([][]string, 0, len(snap.Results))
	for _, r := range snap.Results {
		rows = append(rows, []string{r.ID, r.Name})
	}
	fmt.Fprintf(out, "%s recipes (%d)\n", explorer.IngredientLabel(snap.Ingredient), len(snap.Results))
	fmt.Fprintln(out, renderTable([]string{"ID", "Name"}, rows, []columnAlignment{alignRight, alignLeft}))
	return nil
}
