// Package job runs the hourly questions cronjob: load the questions file,
// log every record, and report how long it took.
package job

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"questioncron/internal/question"
)

// Name identifies the job in log fields.
const Name = "hourly_cronjob"

const (
	startBanner  = "--------- Start running cronjob ---------"
	finishBanner = "--------- Finished running cronjob %s seconds ---------"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config wires a Runner. Zero values fall back to the defaults used by the
// scheduled binary.
type Config struct {
	QuestionsPath string
	Logger        *logrus.Logger
	Clock         Clock
	NewRunID      func() string
}

// Summary describes a completed run.
type Summary struct {
	RunID   string
	Records int
	Started time.Time
	Elapsed time.Duration
}

// Runner executes one pass of the job per Run call.
type Runner struct {
	path     string
	logger   *logrus.Logger
	clock    Clock
	newRunID func() string
}

// New builds a Runner from cfg.
func New(cfg Config) *Runner {
	runner := &Runner{
		path:     cfg.QuestionsPath,
		logger:   cfg.Logger,
		clock:    cfg.Clock,
		newRunID: cfg.NewRunID,
	}
	if runner.path == "" {
		runner.path = question.DefaultPath
	}
	if runner.logger == nil {
		runner.logger = logrus.StandardLogger()
	}
	if runner.clock == nil {
		runner.clock = systemClock{}
	}
	if runner.newRunID == nil {
		runner.newRunID = uuid.NewString
	}
	return runner
}

// Path returns the questions file the runner reads.
func (r *Runner) Path() string {
	return r.path
}

// Run loads the questions file and logs each record in order between a start
// and a completion line. A load failure aborts the run before any record is
// logged and without the completion line.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: r.newRunID()}
	entry := r.logger.WithContext(ctx).WithFields(logrus.Fields{
		"job":    Name,
		"run_id": summary.RunID,
	})

	entry.Info(startBanner)
	summary.Started = r.clock.Now()

	list, err := question.LoadList(r.path)
	if err != nil {
		return summary, fmt.Errorf("run %s: %w", Name, err)
	}
	for _, record := range list {
		entry.Info(record.Text())
	}

	summary.Records = len(list)
	summary.Elapsed = r.clock.Now().Sub(summary.Started)
	if summary.Elapsed < 0 {
		summary.Elapsed = 0
	}
	entry.WithFields(logrus.Fields{
		"records":         summary.Records,
		"elapsed_seconds": summary.Elapsed.Seconds(),
	}).Infof(finishBanner, formatSeconds(summary.Elapsed))
	return summary, nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
