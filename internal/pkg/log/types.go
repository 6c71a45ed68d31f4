package log

import (
	"github.com/sirupsen/logrus"
)

// Level is re-exported so callers do not import logrus directly.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

type Fields = logrus.Fields

type Entry = logrus.Entry

type Logger = logrus.Logger

// StandardLogger returns the process-wide logger instance.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode switches the global level between debug and info after
// Setup, once the configuration is fully known.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(DebugLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent returns an entry tagged with the originating component,
// keeping log filtering by subsystem cheap.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields returns an entry tagged with the originating
// component plus additional structured fields.
func WithComponentAndFields(component string, fields Fields) *Entry {
	return logrus.WithField("component", component).WithFields(fields)
}

// WithError returns an entry carrying the given error.
func WithError(err error) *Entry {
	return logrus.WithError(err)
}
