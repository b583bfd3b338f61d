package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"cleantext/internal/cleaner"
)

// usageError marks invocations that should be answered with the usage text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{msg: fmt.Sprintf("expected exactly %d input file, got %d arguments", n, len(args))}
		}
		return nil
	}
}

func flagUsageError(_ *cobra.Command, err error) error {
	return &usageError{msg: err.Error()}
}

// describeFailure rewrites cleaner failures into user facing messages while
// keeping the original error in the chain.
func describeFailure(err error) error {
	var failure *cleaner.IOFailure
	if !errors.As(err, &failure) {
		return err
	}
	switch {
	case errors.Is(err, fs.ErrNotExist) && failure.Op == "stat":
		return fmt.Errorf("file %q does not exist: %w", failure.Path, err)
	case errors.Is(err, cleaner.ErrNotRegular):
		return fmt.Errorf("%q is not a regular file: %w", failure.Path, err)
	case errors.Is(err, cleaner.ErrLocked):
		return fmt.Errorf("%q is already being cleaned: %w", failure.Path, err)
	default:
		return fmt.Errorf("file operation failed: %w", err)
	}
}
