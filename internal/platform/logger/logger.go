package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Level is driven by KITH_LOG_LEVEL so
// debugging a deployment never requires a rebuild.
func New() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("KITH_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
