package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeClean()
	c.normalizeLogging()
}

func (c *Config) normalizeClean() {
	if c.Clean.Workers == 0 {
		c.Clean.Workers = defaultWorkers
	}
	c.Clean.Progress = strings.ToLower(strings.TrimSpace(c.Clean.Progress))
	if c.Clean.Progress == "" {
		c.Clean.Progress = defaultProgress
	}
	if c.Clean.MaxLineBytes == 0 {
		c.Clean.MaxLineBytes = defaultMaxLineBytes
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("CLEANTEXT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("CLEANTEXT_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
