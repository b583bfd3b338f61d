package cleaner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"

	"cleantext/internal/fileutil"
	"cleantext/internal/logging"
	"cleantext/internal/textfilter"
)

// Options tunes a Run. The zero value filters sequentially with no progress
// reporting and no logging.
type Options struct {
	Workers      int
	MaxLineBytes int
	CountLines   bool
	Progress     Progress
	Logger       *slog.Logger
}

// Stats summarises a completed run.
type Stats struct {
	LinesRead    int64
	LinesWritten int64
	BytesRead    int64
	BytesWritten int64
	Duration     time.Duration
}

// LinesDropped is the number of input lines that filtered down to nothing.
func (s Stats) LinesDropped() int64 {
	return s.LinesRead - s.LinesWritten
}

// Result describes a completed run.
type Result struct {
	OutputPath string
	Stats      Stats
}

// CheckInput verifies that path names an existing regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return ioFailure("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return ioFailure("stat", path, ErrNotRegular)
	}
	return nil
}

// Run filters input into OutputPath(input). Either the whole output file is
// written or none of it is. Cancelling ctx aborts the run and returns
// ctx.Err() unwrapped.
func Run(ctx context.Context, input string, opts Options) (Result, error) {
	start := time.Now()
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "cleaner"))
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	if err := CheckInput(input); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	output := OutputPath(input)

	lock := flock.New(output + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Result{}, ioFailure("lock", lock.Path(), err)
	}
	if !locked {
		return Result{}, ioFailure("lock", input, ErrLocked)
	}
	defer releaseLock(lock)

	logger.Debug("clean started",
		logging.String(logging.FieldInput, input),
		logging.String(logging.FieldOutput, output),
		logging.Int("workers", max(opts.Workers, 1)),
	)

	total := int64(-1)
	if opts.CountLines {
		if total, err = countLines(ctx, input, opts.MaxLineBytes); err != nil {
			return Result{}, err
		}
	}
	progress.Start(total)
	defer progress.Finish()

	out, err := fileutil.CreateAtomic(output, 0o644)
	if err != nil {
		return Result{}, ioFailure("create", output, err)
	}
	defer out.Abort()

	stats, err := copyFiltered(ctx, input, output, out, opts, progress)
	if err != nil {
		return Result{}, err
	}
	if err := out.Commit(); err != nil {
		return Result{}, ioFailure("commit", output, err)
	}

	stats.Duration = time.Since(start)
	logger.Info("clean completed",
		logging.String(logging.FieldOutput, output),
		logging.Int64("lines_read", stats.LinesRead),
		logging.Int64("lines_written", stats.LinesWritten),
		logging.Int64("lines_dropped", stats.LinesDropped()),
		logging.Duration("duration", stats.Duration),
	)
	return Result{OutputPath: output, Stats: stats}, nil
}

// copyFiltered streams input through the filter into dst. Partial stats are
// never returned on error since filter workers may still be reading.
func copyFiltered(ctx context.Context, input, output string, dst io.Writer, opts Options, progress Progress) (Stats, error) {
	src, err := os.Open(input)
	if err != nil {
		return Stats{}, ioFailure("open", input, err)
	}
	defer src.Close()

	var stats Stats
	counted := &countingReader{r: src}
	lines := textfilter.Lines(textfilter.NewDecoder(counted), opts.MaxLineBytes)
	var tracked iter.Seq2[string, error] = func(yield func(string, error) bool) {
		for line, err := range lines {
			if err == nil {
				stats.LinesRead++
				progress.Add(1)
			}
			if !yield(line, err) {
				return
			}
		}
	}

	w := bufio.NewWriter(dst)
	for cleaned, err := range textfilter.FilterOrdered(ctx, tracked, opts.Workers) {
		if err != nil {
			if isContextErr(err) {
				return Stats{}, err
			}
			return Stats{}, ioFailure("read", input, err)
		}
		n, err := w.WriteString(cleaned)
		if err == nil {
			err = w.WriteByte('\n')
		}
		if err != nil {
			return Stats{}, ioFailure("write", output, err)
		}
		stats.LinesWritten++
		stats.BytesWritten += int64(n) + 1
	}
	if err := w.Flush(); err != nil {
		return Stats{}, ioFailure("write", output, err)
	}
	stats.BytesRead = counted.n
	return stats, nil
}

func countLines(ctx context.Context, input string, maxLineBytes int) (int64, error) {
	src, err := os.Open(input)
	if err != nil {
		return 0, ioFailure("open", input, err)
	}
	defer src.Close()

	var total int64
	for _, err := range textfilter.Lines(textfilter.NewDecoder(src), maxLineBytes) {
		if err != nil {
			return 0, ioFailure("read", input, err)
		}
		total++
		if total%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}
	return total, ctx.Err()
}

// releaseLock unlinks the lock file before unlocking it. A run that opened
// the old file only ever sees it locked; later runs create a fresh one.
func releaseLock(lock *flock.Flock) {
	_ = os.Remove(lock.Path())
	_ = lock.Unlock()
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
