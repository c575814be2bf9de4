// Package config handles configuration management for manifestparser.
// It layers the embedded defaults, user and project TOML files,
// MANIFESTPARSER_* environment variables and command-line overrides with
// koanf, and decodes the result into a Config.
package config
