package cli

import (
	"flag"

	"questioncron/internal/config"
)

// jobOptions holds the flags shared by the commands that load questions.
// The log flags are nil for commands that do not log.
type jobOptions struct {
	configPath    *string
	questionsPath *string
	logFormat     *string
	logLevel      *string
}

// addSourceFlags registers the flags that locate the questions file.
func addSourceFlags(fs *flag.FlagSet) *jobOptions {
	return &jobOptions{
		configPath:    fs.String("config", "", "Path to a questioncron YAML config file"),
		questionsPath: fs.String("questions", config.Default().QuestionsPath, "Path to the questions JSON array"),
	}
}

// addJobFlags registers the source flags plus the logger flags.
func addJobFlags(fs *flag.FlagSet) *jobOptions {
	defaults := config.Default()
	opts := addSourceFlags(fs)
	opts.logFormat = fs.String("log-format", defaults.Log.Format, "Log format (text|json)")
	opts.logLevel = fs.String("log-level", defaults.Log.Level, "Log level")
	return opts
}

// resolve layers defaults, the config file, and explicitly set flags, in that
// order, and validates the result.
func (opts *jobOptions) resolve(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if *opts.configPath != "" {
		loaded, err := config.Load(*opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "questions":
			cfg.QuestionsPath = *opts.questionsPath
		case "log-format":
			cfg.Log.Format = *opts.logFormat
		case "log-level":
			cfg.Log.Level = *opts.logLevel
		case "interval":
			cfg.Schedule.Interval = f.Value.String()
		}
	})
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
