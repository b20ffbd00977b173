// Package log is a thin wrapper around logrus that keeps non-debug logging
// cheap and field construction uniform across the module.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

var (
	l     = logrus.New()
	debug = false
)

// SetDebug controls debug logging.
func SetDebug(to bool) {
	debug = to
	if to {
		l.Level = logrus.DebugLevel
	} else {
		l.Level = logrus.InfoLevel
	}
}

// SetFormatter sets the formatter.
func SetFormatter(to logrus.Formatter) {
	l.Formatter = to
}

// SetOutput sets the output.
func SetOutput(to io.Writer) {
	l.Out = to
}

// Fields is a map of logging fields.
type Fields map[string]interface{}

// Err folds an error into a Fields value.
func Err(e error) Fields {
	return Fields{"error": e.Error()}
}

// With merges o into f and returns f for chaining.
func (f Fields) With(o Fields) Fields {
	for k, v := range o {
		f[k] = v
	}
	return f
}

// Debug logs msg at the debug level if debug logging is enabled.
func Debug(msg string, fields ...Fields) {
	if debug {
		entry(fields).Debug(msg)
	}
}

// Info logs msg at the info level.
func Info(msg string, fields ...Fields) {
	entry(fields).Info(msg)
}

// Warn logs msg at the warning level.
func Warn(msg string, fields ...Fields) {
	entry(fields).Warn(msg)
}

// Error logs msg at the error level.
func Error(msg string, fields ...Fields) {
	entry(fields).Error(msg)
}

// Fatal logs msg at the fatal level and exits with a status code != 0.
func Fatal(msg string, fields ...Fields) {
	entry(fields).Fatal(msg)
}

func entry(fields []Fields) logrus.FieldLogger {
	if len(fields) == 0 {
		return l
	}

	merged := Fields{}
	for _, f := range fields {
		merged.With(f)
	}
	return l.WithFields(logrus.Fields(merged))
}
