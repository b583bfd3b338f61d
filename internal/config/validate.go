package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateClean(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateClean() error {
	if c.Clean.Workers < 1 || c.Clean.Workers > maxWorkers {
		return fmt.Errorf("clean.workers must be between 1 and %d, got %d", maxWorkers, c.Clean.Workers)
	}
	switch c.Clean.Progress {
	case ProgressAuto, ProgressAlways, ProgressNever:
	default:
		return fmt.Errorf("clean.progress must be one of auto, always, never; got %q", c.Clean.Progress)
	}
	if c.Clean.MaxLineBytes < minMaxLineBytes {
		return fmt.Errorf("clean.max_line_bytes must be at least %d, got %d", minMaxLineBytes, c.Clean.MaxLineBytes)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("logging.format must be console or json; got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error; got %q", c.Logging.Level)
	}
	return nil
}
