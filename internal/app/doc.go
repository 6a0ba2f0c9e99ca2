// Package app wires configuration, logging, the data source, and the UI.
//
// # Startup
//
//  1. config.Load reads ~/.config/usersearch/config.toml (or --config)
//  2. Flag overrides (--url, --log-level, --theme) are applied
//  3. logging.New opens the log file; the terminal belongs to the UI
//  4. directory.NewSource picks the HTTP or file source for data_url
//  5. ui.Run starts the TUI, which fetches the directory once in the background
//
// # Error Handling
//
// Configuration, log file, and data source errors are returned from Open and
// Run before the UI starts. A failed fetch is not fatal: Fetch logs it once,
// the UI shows it in the header, and searches run against an empty directory.
package app
