// Package logging builds the logrus logger shared by every budgetmate component.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the interactive console free of routine log lines.
const DefaultLevel = "warn"

// New returns a text logger writing to w at the named level.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}

// Discard returns a logger that drops everything. Used by tests and callers
// that do not care about diagnostics.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
