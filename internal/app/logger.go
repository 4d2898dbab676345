package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/akarpov/resilience-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as
// the slog default. Format "json" is for production; "text" adds source
// locations for development. Unknown levels fall back to info. Output
// goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
