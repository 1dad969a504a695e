package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init for early startup paths and tests.
var Log = newLogger()

// Init resets the logger; kept as an explicit startup step.
func Init() {
	Log = newLogger()
}

func newLogger() *slog.Logger {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}
