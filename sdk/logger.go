package sdk

import (
	"github.com/sirupsen/logrus"
)

// Logger is the minimal leveled surface the SDK logs through. Requests
// are logged at trace level on issue and receipt, and at warn level
// when they fail; nothing is logged at error level because failures are
// returned as values, not raised.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// logrusLogger adapts a logrus entry to the Logger interface.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps a logrus logger for use by the SDK.
//
//	l := logrus.New()
//	l.SetLevel(logrus.TraceLevel)
//	config := sdk.DefaultConfig().WithLogger(sdk.NewLogrusLogger(l))
func NewLogrusLogger(l *logrus.Logger) Logger {
	return &logrusLogger{entry: logrus.NewEntry(l).WithField("component", "roost-sdk")}
}

func (l *logrusLogger) Tracef(format string, args ...any) { l.entry.Tracef(format, args...) }
func (l *logrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }

// defaultLogger logs warnings and above to stderr.
func defaultLogger() Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return NewLogrusLogger(l)
}
