package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide logger. Output is JSON so log lines from the
// backfill audit trail stay machine-parseable.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}
