// Package internal holds process-level wiring shared by the server
// binary: environment configuration and logger construction.
package internal

import (
	"io"
	"log/slog"
	"time"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the application logger: JSON output with RFC 3339
// timestamps in prod, human-readable text everywhere else. An
// unrecognized level falls back to info with a warning.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	l, ok := logLevels[level]
	if !ok {
		l = slog.LevelInfo
		slog.Default().Warn("Invalid log level. Using default level: info", slog.String("value", level))
	}

	opts := &slog.HandlerOptions{Level: l}
	if env != "prod" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
