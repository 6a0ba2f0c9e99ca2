// Package config loads usersearch settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/usersearch/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, blank, or invalid, use defaults
//  5. USERSEARCH_DATA_URL and USERSEARCH_LOG_LEVEL override whatever was loaded
//
// # TOML Format
//
//	data_url = "https://example.com/users.json"
//	request_timeout = "10s"
//	filter_debounce_ms = 150
//	hover_debounce_ms = 50
//	theme = "Nightfox"
//	log_file = "~/.local/state/usersearch/usersearch.log"
//	log_level = "info"
//	log_format = "text"
//
// Every field is optional. Setting log_file to an empty string disables the
// log file. Tilde expansion is performed for the config and log paths.
//
// Missing config files are not an error. Unreadable files and invalid TOML are.
package config
