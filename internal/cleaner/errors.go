package cleaner

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegular marks an input path that exists but is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
	// ErrLocked marks an input that another run is already cleaning.
	ErrLocked = errors.New("file is being cleaned by another process")
)

// IOFailure reports a failed filesystem operation. It is terminal: the run is
// aborted and no output file is produced.
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error {
	return e.Err
}

func ioFailure(op, path string, err error) error {
	return &IOFailure{Op: op, Path: path, Err: err}
}
