// Package app is forager's composition root.
//
// Setup turns a config path into the wired object graph: config.Load, the
// slog logger from the logging package, the mealdb HTTP client, a fresh
// state.Store and the explorer.Coordinator that owns it. Both the TUI (Run)
// and the CLI subcommands start from Setup so they share one wiring.
//
//	┌──────────────┐
//	│   Setup()    │
//	└──────┬───────┘
//	       ├─────> config.Load()      config file, then FORAGER_* env
//	       ├─────> logging.New()      log file, or stderr for CLI runs
//	       ├─────> mealdb.NewClient() base URL + request timeout
//	       ├─────> state.Store{}      single search state
//	       └─────> explorer.New()     only writer of the store
//
// Run additionally loads display preferences and blocks in ui.Run.
//
// Startup failures (bad config, unusable log file, invalid base URL) are
// returned wrapped. Request failures after startup never are; they become
// the Failed search state or a warning in the log.
package app
