package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks every field and reports all problems at once.
func Validate(cfg Config) error {
	collector := &issueCollector{}
	if strings.TrimSpace(cfg.QuestionsPath) == "" {
		collector.add("questions_path", "is required")
	}

	switch cfg.Log.Format {
	case FormatText, FormatJSON:
	default:
		collector.add("log.format", fmt.Sprintf("invalid format %q (expected text|json)", cfg.Log.Format))
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", fmt.Sprintf("invalid level %q", cfg.Log.Level))
	}

	interval, err := time.ParseDuration(cfg.Schedule.Interval)
	if err != nil {
		collector.add("schedule.interval", fmt.Sprintf("invalid duration %q", cfg.Schedule.Interval))
	} else if interval <= 0 {
		collector.add("schedule.interval", "must be positive")
	}
	return collector.result()
}
