package job

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultInterval matches the hourly cadence the job was written for.
const DefaultInterval = time.Hour

// Task is a single runnable pass of the job.
type Task interface {
	Run(ctx context.Context) (Summary, error)
}

// Scheduler runs a Task immediately and then once per interval until its
// context is cancelled. A failed pass is logged and the next tick proceeds
// as normal; failed passes are never retried.
type Scheduler struct {
	Task     Task
	Interval time.Duration
	Logger   *logrus.Logger

	// OnPass, when set, observes the outcome of every pass.
	OnPass func(Summary, error)
}

// Run blocks until ctx is done. It returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.Task == nil {
		return errors.New("scheduler task is nil")
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := s.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	entry := logger.WithField("job", Name)
	entry.WithField("interval", interval.String()).Info("scheduler started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if ctx.Err() != nil {
			entry.Info("scheduler stopped")
			return nil
		}
		s.pass(ctx, entry)
		if ctx.Err() != nil {
			continue
		}
		select {
		case <-ctx.Done():
			entry.Info("scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) pass(ctx context.Context, entry *logrus.Entry) {
	summary, err := s.Task.Run(ctx)
	if err != nil {
		entry.WithField("run_id", summary.RunID).WithError(err).Error("cronjob failed")
	}
	if s.OnPass != nil {
		s.OnPass(summary, err)
	}
}
