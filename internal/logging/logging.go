// Package logging builds the slog logger used by the calc command and TUI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultLevel is used when no level is configured anywhere.
const DefaultLevel = slog.LevelWarn

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromEnv resolves the level from an explicit flag value, then
// CALC_LOG_LEVEL, then LOG_LEVEL, falling back to DefaultLevel.
func LevelFromEnv(flagValue string) slog.Level {
	for _, v := range []string{flagValue, os.Getenv("CALC_LOG_LEVEL"), os.Getenv("LOG_LEVEL")} {
		if strings.TrimSpace(v) != "" {
			level, _ := ParseLevel(v)
			return level
		}
	}
	return DefaultLevel
}

// ParseLevel parses DEBUG, INFO, WARN, WARNING or ERROR (case-insensitive).
// Unknown values return INFO and false.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
