// Package obslog wraps logrus the same way the teacher's shared/pkg/logger
// does: a package-level structured logger, level/format resolved from
// explicit input or the environment, and With* helpers returning scoped
// *logrus.Entry values. Only the two commands (cmd/teamselect and
// cmd/teamselect-api) call into this package; the API, cache and progress
// packages log through the *logrus.Logger they are handed. The core
// packages (C1-C8) are synchronous and collaborator-free per spec.md §5 and
// never log.
package obslog

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// Init configures the global structured logger. level empty means "resolve
// from LOG_LEVEL, defaulting to debug in dev / info otherwise".
func Init(level string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
		if level == "" {
			if isDevelopment {
				level = "debug"
			} else {
				level = "info"
			}
		}
	}

	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("invalid LOG_LEVEL, using info")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)
	logger = log
	return log
}

// Get returns the global logger, initializing it with defaults on first use.
func Get() *logrus.Logger {
	if logger == nil {
		return Init("", false)
	}
	return logger
}

// WithInvocation scopes a logger entry to one team-selection invocation.
func WithInvocation(invocationID string) *logrus.Entry {
	return Get().WithField("invocation_id", invocationID)
}

// WithRequest scopes a logger entry to one HTTP request on top of an
// invocation ID.
func WithRequest(requestID, invocationID string) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"request_id":    requestID,
		"invocation_id": invocationID,
	})
}
