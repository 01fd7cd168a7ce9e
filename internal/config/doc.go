// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (environment first), built-in
// defaults fill the remaining gaps, and the final result is validated
// before the application starts.
package config
