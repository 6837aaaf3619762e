// Package config loads and validates configuration for the periodic command.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults
//  2. an optional config file (YAML, TOML or JSON, chosen by extension)
//  3. environment variables with the PERIODIC_ prefix, dots replaced by
//     underscores (PERIODIC_LOG_LEVEL, PERIODIC_SCAN_WORKERS, ...)
//  4. command-line flags that were explicitly set
//
// The merged result is checked with go-playground/validator struct tags.
package config
