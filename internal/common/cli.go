package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the JSON logger shared by every command. debug drops the
// level to Debug; the result is also installed as slog's default.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
