package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"cleantext/internal/testsupport"
)

func TestCLICleansFile(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "report.txt", "Hello, 世界! 123 @@@\n   \t  \nemoji 😀 test\n")

	stdout, stderr, code := runCLI(t, "--progress", "never", input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	output := filepath.Join(dir, "report_cleaned.txt")
	requireContains(t, stdout, output)
	requireNotContains(t, stderr, "WARN")

	got := testsupport.ReadLines(t, output)
	want := []string{"Hello, 世界! 123", "emoji  test"}
	if !slices.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestCLIUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.txt", "b.txt"}},
		{"unknown flag", []string{"--bogus", "a.txt"}},
		{"bad workers flag", []string{"--workers", "0", "a.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if stdout != "" {
				t.Fatalf("expected no stdout, got %q", stdout)
			}
			requireContains(t, stderr, "Usage:")
			requireContains(t, stderr, "cleantext <input_file>")
		})
	}
}

func TestCLIMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, stderr, code := runCLI(t, missing)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	requireContains(t, stderr, "does not exist")
	requireNotContains(t, stderr, "Usage:")
	testsupport.RequireAbsent(t, filepath.Join(filepath.Dir(missing), "missing_cleaned.txt"))
}

func TestCLIDirectoryInput(t *testing.T) {
	_, stderr, code := runCLI(t, t.TempDir())
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	requireContains(t, stderr, "not a regular file")
}

func TestCLIWarnsOnNonTextExtension(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "data", "abc\n")

	stdout, stderr, code := runCLI(t, "--progress", "never", input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	requireContains(t, stderr, "[WARN]")
	requireContains(t, stderr, "does not end in .txt")
	requireContains(t, stdout, filepath.Join(dir, "data_cleaned"))
}

func TestCLIUpperCaseTxtIsNotWarned(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "NOTES.TXT", "abc\n")

	_, stderr, code := runCLI(t, "--progress", "never", input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	requireNotContains(t, stderr, "[WARN]")
}

func TestCLIStatsTableAndWorkers(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "stats.txt", "one\n\ntwo\n  \nthree\n")

	stdout, stderr, code := runCLI(t, "--progress", "never", "--stats", "--workers", "4", input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	requireContains(t, stdout, "Lines read")
	requireContains(t, stdout, "Lines dropped")
	requireContains(t, stdout, "Bytes written")

	got := testsupport.ReadLines(t, filepath.Join(dir, "stats_cleaned.txt"))
	if !slices.Equal(got, []string{"one", "two", "three"}) {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCLILogsToStderrOnly(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "logged.txt", "line\n")

	stdout, stderr, code := runCLI(t, "--progress", "never", "--log-format", "json", input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	requireContains(t, stderr, `"msg":"clean completed"`)
	requireContains(t, stderr, `"run_id":`)
	requireNotContains(t, stdout, "clean completed")
}

func TestCLIAutoProgressLogsWhenNotTerminal(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "auto.txt", "a\nb\nc\nd\n")

	_, stderr, code := runCLI(t, input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	requireContains(t, stderr, "progress: processing")
}

func TestCLIConfigFileAppliesSettings(t *testing.T) {
	dir := t.TempDir()
	var content strings.Builder
	var want []string
	for i := range 500 {
		if i%5 == 0 {
			content.WriteString("  @@@ \n")
			continue
		}
		fmt.Fprintf(&content, "行 %d 😀\n", i)
		want = append(want, fmt.Sprintf("行 %d", i))
	}
	input := testsupport.WriteFile(t, dir, "cfg.txt", content.String())
	cfg := testsupport.NewConfig(t, testsupport.WithWorkers(4), testsupport.WithLogLevel("error"))
	configPath := testsupport.WriteConfig(t, dir, cfg)

	out, stderr, code := runCLI(t, "--config", configPath, "config", "validate")
	if code != 0 {
		t.Fatalf("config validate exit %d: %s", code, stderr)
	}
	requireContains(t, out, "clean.workers")
	requireContains(t, out, "4")

	_, stderr, code = runCLI(t, "--config", configPath, input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected quiet stderr with error level and progress off, got %q", stderr)
	}
	got := testsupport.ReadLines(t, filepath.Join(dir, "cfg_cleaned.txt"))
	if !slices.Equal(got, want) {
		t.Fatalf("parallel run from config reordered or lost lines: got %d lines, want %d", len(got), len(want))
	}
}

func TestCLIInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "cfg.txt", "abc\n")
	configPath := testsupport.WriteFile(t, dir, "bad.toml", "[clean]\nworkers = -1\n")

	_, stderr, code := runCLI(t, "--config", configPath, input)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	requireContains(t, stderr, "clean.workers")
	testsupport.RequireAbsent(t, filepath.Join(dir, "cfg_cleaned.txt"))
}

func TestCLICancelledContext(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "cancel.txt", "abc\n")
	t.Setenv("HOME", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	if code := run(ctx, []string{"--progress", "never", input}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	requireContains(t, stderr.String(), "Interrupted")
	testsupport.RequireAbsent(t, filepath.Join(dir, "cancel_cleaned.txt"))
}

func TestCLICleansFileNamedLikeSubcommand(t *testing.T) {
	dir := t.TempDir()
	input := testsupport.WriteFile(t, dir, "config", "abc @@\n")

	out, _, code := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("--help exit %d", code)
	}
	requireContains(t, out, "cleantext ./config")

	stdout, stderr, code := runCLI(t, "--progress", "never", input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	requireContains(t, stdout, filepath.Join(dir, "config_cleaned"))
	if got := testsupport.ReadLines(t, filepath.Join(dir, "config_cleaned")); !slices.Equal(got, []string{"abc"}) {
		t.Fatalf("unexpected output %q", got)
	}
}
