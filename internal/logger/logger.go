// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger tagged with the component name.
func New(component string) zerolog.Logger {
	return zerolog.New(os.Stderr).With().
		Str("component", component).
		Timestamp().
		Logger()
}
