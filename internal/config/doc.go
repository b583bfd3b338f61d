// Package config loads, normalizes, and validates cleantext configuration.
//
// Configuration is optional: without a file every run uses the repository
// defaults. When present, a TOML file tunes how the cleaner runs (worker
// count, progress display, line size limit) and how it logs. Environment
// variables CLEANTEXT_LOG_LEVEL and CLEANTEXT_LOG_FORMAT override the logging
// section.
//
// The character whitelist is deliberately not configurable.
package config
