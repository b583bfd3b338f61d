package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cleantext/internal/cleaner"
	"cleantext/internal/config"
	"cleantext/internal/logging"
)

type cleanFlags struct {
	workers   int
	progress  string
	logLevel  string
	logFormat string
	stats     bool
}

func (f *cleanFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 1, "Goroutines filtering lines (output order is unchanged)")
	cmd.Flags().StringVar(&f.progress, "progress", config.ProgressAuto, "Progress display: auto, always or never")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: console or json")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "Print a summary table after cleaning")
}

// apply lets explicitly set flags win over the loaded configuration.
func (f *cleanFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Clean.Workers = f.workers
	}
	if flags.Changed("progress") {
		cfg.Clean.Progress = strings.ToLower(strings.TrimSpace(f.progress))
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(f.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(f.logFormat))
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{msg: err.Error()}
	}
	return nil
}

func runClean(cmd *cobra.Command, ctx *commandContext, flags *cleanFlags, input string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if err := flags.apply(cmd, cfg); err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return err
	}
	runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())

	if err := cleaner.CheckInput(input); err != nil {
		return describeFailure(err)
	}
	if !strings.EqualFold(filepath.Ext(input), ".txt") {
		fmt.Fprintln(stderr, renderNotice(statusWarn,
			fmt.Sprintf("%s does not end in .txt; cleantext is meant for plain text files, processing anyway", input),
			shouldColorize(stderr)))
	}

	result, err := cleaner.Run(runCtx, input, cleaner.Options{
		Workers:      cfg.Clean.Workers,
		MaxLineBytes: cfg.Clean.MaxLineBytes,
		CountLines:   cfg.Clean.CountLines && cfg.Clean.Progress != config.ProgressNever,
		Progress:     newProgress(cfg.Clean.Progress, stderr, logger),
		Logger:       logger,
	})
	if err != nil {
		return describeFailure(err)
	}

	if flags.stats {
		fmt.Fprintln(stdout, renderStats(result.Stats))
	}
	fmt.Fprintf(stdout, "Cleaning complete! Output saved to: %s\n", result.OutputPath)
	return nil
}

func newProgress(mode string, stderr io.Writer, logger *slog.Logger) cleaner.Progress {
	switch mode {
	case config.ProgressNever:
		return nil
	case config.ProgressAlways:
		return cleaner.NewBarProgress(stderr)
	default:
		if shouldColorize(stderr) {
			return cleaner.NewBarProgress(stderr)
		}
		return cleaner.NewLogProgress(logger, 10)
	}
}
