package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cleantext/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a default config with progress disabled so tests never
// draw a bar, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Clean.Progress = config.ProgressNever
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithWorkers overrides the worker count.
func WithWorkers(n int) ConfigOption {
	return func(c *config.Config) {
		c.Clean.Workers = n
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) ConfigOption {
	return func(c *config.Config) {
		c.Logging.Level = level
	}
}

// WriteConfig marshals cfg as TOML into dir and returns the file path.
func WriteConfig(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "cleantext.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
