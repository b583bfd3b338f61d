package textfilter

import (
	"context"
	"iter"
	"sync"
)

type lineJob struct {
	seq  int
	line string
}

type lineResult struct {
	seq     int
	cleaned string
	ok      bool
}

// FilterOrdered behaves like Filter but spreads FilterLine across workers
// goroutines. Results are re-serialised so output order always equals input
// order. At most 2*workers lines are in flight at once. With workers <= 1
// lines are filtered on the caller's goroutine.
//
// Cancelling ctx ends the sequence with ctx.Err(). When the sequence returns,
// for whatever reason, lines is no longer being iterated.
func FilterOrdered(ctx context.Context, lines iter.Seq2[string, error], workers int) iter.Seq2[string, error] {
	if workers <= 1 {
		return filterSequential(ctx, lines)
	}
	return func(yield func(string, error) bool) {
		window := workers * 2
		runCtx, cancel := context.WithCancel(ctx)
		jobs := make(chan lineJob, window)
		results := make(chan lineResult, window)
		// A slot is taken before a line is handed to the workers and given back
		// once its result leaves the reorder buffer.
		slots := make(chan struct{}, window)

		// readErr is published to the consumer through wg.Wait -> close(results).
		var readErr error
		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(jobs)
			seq := 0
			for line, err := range lines {
				if err != nil {
					readErr = err
					return
				}
				select {
				case slots <- struct{}{}:
				case <-runCtx.Done():
					return
				}
				select {
				case jobs <- lineJob{seq: seq, line: line}:
					seq++
				case <-runCtx.Done():
					return
				}
			}
		}()

		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range jobs {
					cleaned, ok := FilterLine(job.line)
					select {
					case results <- lineResult{seq: job.seq, cleaned: cleaned, ok: ok}:
					case <-runCtx.Done():
						return
					}
				}
			}()
		}
		go func() {
			wg.Wait()
			close(results)
		}()

		// results closes only after the reader and every worker are done, so
		// draining it waits for all of them.
		defer func() {
			cancel()
			for range results {
			}
		}()

		pending := make(map[int]lineResult, window)
		next := 0
		for res := range results {
			pending[res.seq] = res
			for {
				ready, found := pending[next]
				if !found {
					break
				}
				delete(pending, next)
				next++
				<-slots
				if !ready.ok {
					continue
				}
				if !yield(ready.cleaned, nil) {
					return
				}
			}
		}

		if err := ctx.Err(); err != nil {
			yield("", err)
			return
		}
		if readErr != nil {
			yield("", readErr)
		}
	}
}

// filterSequential checks ctx once per raw line, so a cancelled run stops
// even when the remaining lines all filter to nothing.
func filterSequential(ctx context.Context, lines iter.Seq2[string, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for line, err := range lines {
			if err == nil {
				err = ctx.Err()
			}
			if err != nil {
				yield("", err)
				return
			}
			if cleaned, ok := FilterLine(line); ok {
				if !yield(cleaned, nil) {
					return
				}
			}
		}
	}
}
