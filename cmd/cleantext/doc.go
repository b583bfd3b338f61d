// Package main hosts the cleantext CLI entrypoint and command graph.
//
// The root command takes exactly one input file, filters it through the
// character whitelist and writes the result next to the input with a
// "_cleaned" suffix before the extension. It resolves configuration, builds
// the logger, picks a progress display and turns cleaner failures into
// messages a user can act on. The config subcommands scaffold and check the
// optional TOML configuration.
//
// Keep this package lean: filtering lives in internal/textfilter and file
// handling in internal/cleaner.
package main
