package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"questioncron/internal/config"
	"questioncron/internal/job"
)

// runScheduler is a test seam for the blocking scheduler loop.
var runScheduler = func(ctx context.Context, scheduler *job.Scheduler) error {
	return scheduler.Run(ctx)
}

// runSchedule builds the handler for the schedule command.
func runSchedule(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		opts := addJobFlags(fs)
		fs.String("interval", config.Default().Schedule.Interval, "Time between runs (Go duration)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := opts.resolve(fs)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}
		logger, err := newLogger(cfg.Log, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}

		scheduler := &job.Scheduler{
			Task:     job.New(job.Config{QuestionsPath: cfg.QuestionsPath, Logger: logger}),
			Interval: cfg.Interval(),
			Logger:   logger,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runScheduler(ctx, scheduler); err != nil {
			logger.WithError(err).Error("Scheduler error")
			return ExitError
		}
		return ExitOK
	}
}
