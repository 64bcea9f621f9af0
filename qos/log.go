package qos

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger is the package-level structured logger.
// Set ROS_QOS_LOG=debug|info|warn|error to control verbosity at runtime.
// Default is warn so library consumers only see QoS warnings.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	if v := os.Getenv("ROS_QOS_LOG"); v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			l.SetLevel(lvl)
		}
	}
	return l
}()

// SetLogger replaces the package logger. Intended for embedding the package
// into an application with its own logging configuration.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// warnf routes the package's non-fatal diagnostics (deprecated identifiers,
// zero-depth KEEP_LAST) through the package logger. Tests swap it to capture
// warnings.
var warnf = func(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
