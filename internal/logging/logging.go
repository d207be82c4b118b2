// internal/logging/logging.go
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. The library packages never log;
// only the CLI writes here.
var Log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339

	Log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// SetLevel sets the log level from its string name.
func SetLevel(levelStr string) {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		Log.Warn().Str("level", levelStr).Msg("invalid log level, defaulting to info")
		level = zerolog.InfoLevel
	}
	Log = Log.Level(level)
}
