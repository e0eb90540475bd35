// Command forager browses TheMealDB recipes by ingredient.
//
// Run without arguments it opens the terminal browser; piped, it prints the
// default ingredient's recipes as a table. Subcommands:
//
//	forager search <ingredient> [--json]
//	forager show <id>... [--json]
//	forager ingredients
//
// All commands accept --config. A .env file in the working directory is
// loaded first, so FORAGER_API_BASE and FORAGER_LOG_LEVEL may live there.
package main
