package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command tree and maps the outcome onto an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	executed, err := cmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	var usage *usageError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		if executed == nil {
			executed = cmd
		}
		fmt.Fprint(stderr, executed.UsageString())
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "Interrupted")
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
