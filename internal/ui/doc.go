// Package ui provides the Bubble Tea terminal interface for forager.
//
// # Architecture Overview
//
// The Model never talks to the recipe API itself. Every action goes through
// the explorer.Coordinator, which records the outcome in the state store;
// the Model re-reads that store on each message and renders from the copy.
// Network calls run as tea.Cmd goroutines and report back with messages.
//
// Searches are split in two: StartSearch runs inside Update so the next frame
// already shows the loading spinner, and CompleteSearch runs in the command.
// A result that arrives for a superseded search is dropped by the store.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling, commands and Run
//   - header.go: status line, ingredient bar and footer hints
//   - results.go: result list and the titled box shared by all panes
//   - detail.go: recipe overlay backed by a viewport
//   - logs.go: diagnostics overlay tailing the log file
//   - help.go, keys.go: key bindings and the help overlay built from them
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Keyboard Controls
//
//	←/→, 1-9, enter   pick and search an ingredient
//	j/k, g/G, enter   move through recipes and open one
//	esc/x             close the recipe or log overlay
//	r                 search again (reload in the log overlay)
//	u                 toggle links in the recipe overlay
//	L, T, h/?, q      logs, theme, help, quit
//
// Theme and link visibility persist through the prefs package.
package ui
