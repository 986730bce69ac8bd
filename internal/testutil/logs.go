package testutil

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// NewLogger returns a discarding info-level logger and a hook that records
// every entry it emits.
func NewLogger() (*logrus.Logger, *test.Hook) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.InfoLevel)
	hook := test.NewLocal(logger)
	return logger, hook
}

// Messages returns the message of every recorded entry in emission order.
func Messages(hook *test.Hook) []string {
	entries := hook.AllEntries()
	messages := make([]string, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, entry.Message)
	}
	return messages
}
