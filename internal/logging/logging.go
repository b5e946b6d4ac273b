// Package logging constructs the component-scoped loggers used across subtran.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger entry tagged with the given component name.
// Debug output is enabled with SUBTRAN_DEBUG=1.
func NewLogger(component string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if os.Getenv("SUBTRAN_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("component", component)
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
