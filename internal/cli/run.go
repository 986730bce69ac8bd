package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"questioncron/internal/job"
)

// runJob is a test seam around a single job pass.
var runJob = func(ctx context.Context, runner *job.Runner) (job.Summary, error) {
	return runner.Run(ctx)
}

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		opts := addJobFlags(fs)
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

		runner := job.New(job.Config{QuestionsPath: cfg.QuestionsPath, Logger: logger})
		if _, err := runJob(context.Background(), runner); err != nil {
			logger.WithError(err).Error("Run failed")
			return ExitError
		}
		return ExitOK
	}
}
