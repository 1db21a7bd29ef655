// Package logger provides the process-wide logging facade.
//
// It wraps logrus behind printf-style helpers so call sites stay terse:
//
//	logger.Info("[MCP] %d/%d servers connected", ok, total)
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

// SetOutput redirects log output, e.g. to a file or io.Discard in tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetVerbose switches the level between Debug and Info.
func SetVerbose(verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

func Debug(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warn(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Fatal logs and exits with status 1.
func Fatal(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
