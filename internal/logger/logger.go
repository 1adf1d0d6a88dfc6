// Package logger builds charmbracelet loggers for the command line tools.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a text logger on stderr with the given prefix and level.
func New(prefix string, level log.Level) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level)
}

// NewWithWriter creates a text logger writing to w.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    level == log.DebugLevel,
		ReportTimestamp: level == log.DebugLevel,
		Formatter:       log.TextFormatter,
	})
}
