// Package config holds the optional YAML settings for questioncron. Every
// field has a default, so running without a config file is the normal case.
package config

import (
	"time"

	"questioncron/internal/question"
)

// Log format names accepted in config and flags.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the decoded questioncron config file.
type Config struct {
	QuestionsPath string   `yaml:"questions_path"`
	Log           Log      `yaml:"log"`
	Schedule      Schedule `yaml:"schedule"`
}

// Log selects the logger output.
type Log struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Schedule configures the in-process scheduler.
type Schedule struct {
	Interval string `yaml:"interval"`
}

// Default returns the settings the scheduled binary uses when given nothing.
func Default() Config {
	return Config{
		QuestionsPath: question.DefaultPath,
		Log: Log{
			Format: FormatText,
			Level:  "info",
		},
		Schedule: Schedule{
			Interval: "1h",
		},
	}
}

// Interval returns the parsed schedule interval. It assumes Validate passed
// and falls back to one hour otherwise.
func (cfg Config) Interval() time.Duration {
	interval, err := time.ParseDuration(cfg.Schedule.Interval)
	if err != nil || interval <= 0 {
		return time.Hour
	}
	return interval
}
