// Package zlog holds the process-wide logger shared by every zyinput package.
package zlog

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// Set replaces the package-level logger. Callers embedding zyinput in a
// larger application should call this once during startup.
func Set(l zerolog.Logger) {
	logger = l
}

// Get returns the current package-level logger.
func Get() zerolog.Logger {
	return logger
}
