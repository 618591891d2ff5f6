package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger at the given level. Unknown levels fall back
// to info.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(parsed)
}
