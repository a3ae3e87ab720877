// Package logging owns the shared logrus logger used across the application.
package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var log = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

// GetLogger returns the shared logger instance. Packages capture it in a
// package-level variable and may override it through their SetLogger hooks.
func GetLogger() *logrus.Logger {
	return log
}

// Configure applies a level and format ("text" or "json") to the shared
// logger. Unknown levels fall back to info.
func Configure(level, format string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}
