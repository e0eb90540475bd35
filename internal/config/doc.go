// Package config loads forager's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/forager/config.toml
//  3. If the file doesn't exist, start from Default()
//  4. Fields that are missing or blank keep their default
//  5. FORAGER_API_BASE and FORAGER_LOG_LEVEL override whatever the file says
//
// The command entry point loads a .env file from the working directory before
// calling Load, so the overrides can live there too.
//
// # Default Values
//
//   - API base: https://www.themealdb.com/api/json/v1/1
//   - Default ingredient: chicken
//   - Request timeout: 15s
//   - Log file: ~/.local/state/forager/forager.log
//   - Log level / format: info / text
//
// # TOML Format
//
//	api_base = "https://www.themealdb.com/api/json/v1/1"
//	default_ingredient = "chicken"
//	request_timeout = "15s"
//	log_file = "~/.local/state/forager/forager.log"
//	log_level = "info"
//	log_format = "text"
//
// default_ingredient must be one of the ingredients in the ingredient bar.
// request_timeout uses Go duration syntax. Tilde expansion is performed on
// log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, an unknown
// default_ingredient and a non-positive request_timeout. A missing file is
// not an error.
package config
