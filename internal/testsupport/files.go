package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to name inside dir, creating parent directories,
// and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadLines returns the newline-terminated lines of path. It fails the test
// when the file does not end with a newline or contains "\r".
func ReadLines(t testing.TB, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	content := string(data)
	if content == "" {
		return nil
	}
	if strings.Contains(content, "\r") {
		t.Fatalf("%s contains carriage returns: %q", path, content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Fatalf("%s does not end with a newline: %q", path, content)
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// RequireAbsent fails the test when path exists.
func RequireAbsent(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected %s to be absent", path)
	} else if !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", path, err)
	}
}
