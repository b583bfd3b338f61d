// Package fileutil holds small filesystem helpers shared by the cleaner.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFile buffers writes in a hidden temporary file next to the final
// path. Commit renames it into place; Abort discards it. Readers of the final
// path only ever see the previous content or the complete new content.
type AtomicFile struct {
	*os.File
	path string
	mode os.FileMode
	done bool
}

// CreateAtomic opens a temporary file in the directory of path.
func CreateAtomic(path string, mode os.FileMode) (*AtomicFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &AtomicFile{File: tmp, path: path, mode: mode}, nil
}

// Path is the destination the file will be renamed to.
func (a *AtomicFile) Path() string {
	return a.path
}

// Commit flushes the temporary file to disk and renames it over Path.
func (a *AtomicFile) Commit() error {
	if a.done {
		return fmt.Errorf("commit %s: already finished", a.path)
	}
	a.done = true
	tmp := a.File.Name()
	if err := a.File.Chmod(a.mode); err != nil {
		_ = a.File.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := a.File.Sync(); err != nil {
		_ = a.File.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("sync: %w", err)
	}
	if err := a.File.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Abort removes the temporary file. It is a no-op after Commit, so it can be
// deferred unconditionally.
func (a *AtomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	_ = a.File.Close()
	_ = os.Remove(a.File.Name())
}
