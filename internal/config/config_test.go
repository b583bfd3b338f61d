package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cleantext/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "cleantext", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	want := config.Default()
	if cfg.Clean != want.Clean {
		t.Fatalf("unexpected clean defaults: got %+v want %+v", cfg.Clean, want.Clean)
	}
	if cfg.Logging != want.Logging {
		t.Fatalf("unexpected logging defaults: got %+v want %+v", cfg.Logging, want.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cleantext.toml")

	type payload struct {
		Clean struct {
			Workers  int    `toml:"workers"`
			Progress string `toml:"progress"`
		} `toml:"clean"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Clean.Workers = 4
	custom.Clean.Progress = " Never "
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Clean.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Clean.Workers)
	}
	if cfg.Clean.Progress != config.ProgressNever {
		t.Fatalf("expected normalized progress mode, got %q", cfg.Clean.Progress)
	}
	if cfg.Clean.MaxLineBytes != config.Default().Clean.MaxLineBytes {
		t.Fatalf("expected default max line bytes, got %d", cfg.Clean.MaxLineBytes)
	}
	if !cfg.Clean.CountLines {
		t.Fatal("expected count_lines default to survive partial file")
	}
	if cfg.Logging.Format != config.LogFormatJSON || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
}

func TestLoadProjectConfigFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)
	if err := os.WriteFile(filepath.Join(project, "cleantext.toml"), []byte("[clean]\nworkers = 3\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || cfg.Clean.Workers != 3 {
		t.Fatalf("expected project config to be used, exists=%v workers=%d", exists, cfg.Clean.Workers)
	}
}

func TestEnvVarOverridesLogging(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cleantext.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"info\"\nformat = \"console\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CLEANTEXT_LOG_LEVEL", "WARN")
	t.Setenv("CLEANTEXT_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != config.LogFormatJSON {
		t.Errorf("expected format from env, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative workers", "[clean]\nworkers = -2\n", "clean.workers"},
		{"too many workers", "[clean]\nworkers = 100000\n", "clean.workers"},
		{"unknown progress", "[clean]\nprogress = \"sometimes\"\n", "clean.progress"},
		{"tiny line limit", "[clean]\nmax_line_bytes = 10\n", "clean.max_line_bytes"},
		{"unknown format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"unknown level", "[logging]\nlevel = \"chatty\"\n", "logging.level"},
		{"unknown key", "[clean]\ncharset = \"latin\"\n", "parse config"},
		{"malformed toml", "[clean\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "cleantext.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != missing {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Clean.Workers != 1 {
		t.Fatalf("expected default workers, got %d", cfg.Clean.Workers)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Clean != config.Default().Clean {
		t.Fatalf("sample should mirror defaults, got %+v", cfg.Clean)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/notes/a.txt")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "notes", "a.txt") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
