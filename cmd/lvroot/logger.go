package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// newLogger builds the CLI logger. Errors are highlighted in red.
func newLogger(output io.Writer, level string, noColor bool) *slog.Logger {
	handler := tint.NewHandler(output, &tint.Options{
		Level:      parseLevel(level),
		AddSource:  false,
		TimeFormat: "2006-01-02 15:04:05.000Z07:00",
		NoColor:    noColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
	return slog.New(handler)
}

// parseLevel maps a config level name onto slog; unknown names mean info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
