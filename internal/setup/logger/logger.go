package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. An empty level falls back to LOG_LEVEL,
// then to info.
func New(level string) zerolog.Logger {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
