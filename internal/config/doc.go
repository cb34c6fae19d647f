// Package config manages offspring user configuration.
//
// It handles:
//   - Locating and reading the JSON configuration file
//   - Environment variable overrides
//   - Updating individual settings from the config command
package config
