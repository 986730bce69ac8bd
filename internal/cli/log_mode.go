package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"questioncron/internal/config"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// newLogger builds the process logger writing to w.
func newLogger(cfg config.Log, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	switch cfg.Format {
	case config.FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case config.FormatText, "":
		tty := isTerminal(w)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableQuote:  true,
			ForceColors:   tty,
			DisableColors: !tty,
		})
	default:
		return nil, fmt.Errorf("invalid log format %q (expected text|json)", cfg.Format)
	}
	return logger, nil
}

// defaultIsTerminal inspects a writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
