package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/five82/forager/internal/mealdb"
)

// maxConcurrentLookups bounds parallel lookup.php requests for show.
const maxConcurrentLookups = 4

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>...",
		Short: "Show full recipes by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.setup()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			details := make([]mealdb.RecipeDetail, len(args))
			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxConcurrentLookups)
			for i, id := range args {
				g.Go(func() error {
					d, err := svc.Client.LookupByID(gctx, strings.TrimSpace(id))
					if err != nil {
						svc.Logger.Warn("recipe lookup failed", "id", id, "error", err)
						return fmt.Errorf("show %s: %w", id, err)
					}
					details[i] = *d
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := make([]recipeDetailJSON, 0, len(details))
				for _, d := range details {
					payload = append(payload, detailJSON(d))
				}
				return writeJSON(out, payload)
			}
			for i, d := range details {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printDetail(out, d)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print recipes as JSON")
	return cmd
}

func printDetail(out io.Writer, d mealdb.RecipeDetail) {
	fmt.Fprintf(out, "%s (#%s)\n", d.Name, d.ID)
	meta := make([]string, 0, 2)
	for _, v := range []string{d.Category, d.Area} {
		if strings.TrimSpace(v) != "" {
			meta = append(meta, v)
		}
	}
	if len(meta) > 0 {
		fmt.Fprintln(out, strings.Join(meta, " · "))
	}
	if len(d.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(d.Tags, ", "))
	}
	for _, link := range [][2]string{{"Image", d.Thumbnail}, {"Video", d.YouTube}, {"Source", d.Source}} {
		if link[1] != "" {
			fmt.Fprintf(out, "%-7s%s\n", link[0], link[1])
		}
	}

	rows := make([][]string, 0, len(d.Ingredients))
	for _, line := range d.Ingredients {
		rows = append(rows, []string{line.Measure, line.Name})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable([]string{"Measure", "Ingredient"}, rows, []columnAlignment{alignRight, alignLeft}))
	}
	if instructions := strings.TrimSpace(d.Instructions); instructions != "" {
		fmt.Fprintln(out, "Instructions:")
		fmt.Fprintln(out, strings.ReplaceAll(instructions, "\r\n", "\n"))
	}
}
