package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel changes the minimum level, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	defaultLogger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

// Debug logs message at Debug level.
func Debug(msg string) {
	defaultLogger.Debugln(msg)
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}

// Writer returns a writer whose lines are logged at Info level, for access logs.
func Writer() io.Writer {
	return defaultLogger.Writer()
}
