package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/forager/internal/app"
)

// commandContext carries the persistent flags to subcommands.
type commandContext struct {
	configFlag string
	prefsFlag  string
}

// setup wires services for a one-shot CLI command. Logs go to stderr so
// stdout stays clean for tables and JSON.
func (c *commandContext) setup() (*app.Services, error) {
	return app.Setup(app.Options{
		ConfigPath: strings.TrimSpace(c.configFlag),
		LogPath:    "stderr",
	})
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "forager",
		Short:         "Browse TheMealDB recipes by ingredient",
		Long:          "forager opens a terminal recipe browser. When stdout is not a terminal it prints the default search instead.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return runDefaultSearch(cmd, ctx)
			}
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: strings.TrimSpace(ctx.configFlag),
				PrefsPath:  strings.TrimSpace(ctx.prefsFlag),
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (default ~/.config/forager/config.toml)")
	rootCmd.Flags().StringVar(&ctx.prefsFlag, "prefs", "", "Preferences file path (default ~/.config/forager/prefs.toml)")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newIngredientsCommand())

	return rootCmd
}
