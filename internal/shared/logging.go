package shared

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogger builds the process-wide slog logger and installs it as the
// default.
func InitLogger(format, level string) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, format, level))
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a logger without touching the process default; tests use
// it to capture output.
func NewLogger(w io.Writer, format, level string) *slog.Logger {
	return slog.New(newHandler(w, format, level))
}

func newHandler(w io.Writer, format, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.ToLower(format) == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel maps config strings to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
