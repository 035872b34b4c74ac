// Package logging builds the slog logger used across next-issue.
// Logs go to stderr so that list output on stdout stays machine readable.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a logger writing text records to w at the given minimum level.
// Pass a *slog.LevelVar to adjust the level after construction.
// A nil writer yields a logger that discards everything.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// dropTime removes the timestamp from top-level records.
// Runs are short-lived and interleave with terminal output.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// ParseLevel parses a log level string into slog.Level.
// Unknown values fall back to warn.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
