package cleaner

import (
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"

	"cleantext/internal/logging"
)

// Progress receives per-line read progress. Start is called once with the
// total line count, or -1 when the total is unknown.
type Progress interface {
	Start(total int64)
	Add(n int64)
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(int64) {}
func (nopProgress) Add(int64)   {}
func (nopProgress) Finish()     {}

// BarProgress draws a terminal progress bar.
type BarProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewBarProgress returns a Progress that renders a bar on w.
func NewBarProgress(w io.Writer) *BarProgress {
	return &BarProgress{writer: w}
}

func (p *BarProgress) Start(total int64) {
	p.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("lines"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *BarProgress) Add(n int64) {
	if p.bar != nil {
		_ = p.bar.Add64(n)
	}
}

func (p *BarProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// LogProgress reports progress as sampled log records. It is meant for
// non-interactive runs where a bar would only clutter captured output.
type LogProgress struct {
	logger  *slog.Logger
	sampler *logging.ProgressSampler
	total   int64
	done    int64
}

// NewLogProgress logs each time progress crosses a bucketPercent boundary.
func NewLogProgress(logger *slog.Logger, bucketPercent float64) *LogProgress {
	return &LogProgress{
		logger:  logging.NewComponentLogger(logger, "progress"),
		sampler: logging.NewProgressSampler(bucketPercent),
	}
}

func (p *LogProgress) Start(total int64) {
	p.total = total
	p.done = 0
	p.sampler.Reset()
}

func (p *LogProgress) Add(n int64) {
	p.done += n
	if p.total <= 0 {
		return
	}
	percent := float64(p.done) * 100 / float64(p.total)
	if p.sampler.ShouldLog(percent) {
		p.logger.Info("processing",
			logging.Int64("lines", p.done),
			logging.Int64("total", p.total),
			logging.Int("percent", int(percent)),
		)
	}
}

func (p *LogProgress) Finish() {}
