// Package logging assembles the slog loggers used by cleantext.
//
// It owns the console and JSON handlers, maps configured level names onto
// slog levels and exposes small helpers for the fields every run carries:
// the component emitting a line and the run identifier. Logs always go to
// stderr by default so stdout stays reserved for the command's result.
//
// ProgressSampler keeps progress logging readable when no terminal progress
// bar is available.
package logging
