package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in    string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"Warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, known := ParseLevel(tc.in)
			if got != tc.want || known != tc.known {
				t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tc.in, got, known, tc.want, tc.known)
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("CALC_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	if got := LevelFromEnv(""); got != DefaultLevel {
		t.Errorf("default level = %v, want %v", got, DefaultLevel)
	}

	t.Setenv("LOG_LEVEL", "error")
	if got := LevelFromEnv(""); got != slog.LevelError {
		t.Errorf("LOG_LEVEL level = %v, want ERROR", got)
	}

	t.Setenv("CALC_LOG_LEVEL", "info")
	if got := LevelFromEnv(""); got != slog.LevelInfo {
		t.Errorf("CALC_LOG_LEVEL level = %v, want INFO", got)
	}

	if got := LevelFromEnv("debug"); got != slog.LevelDebug {
		t.Errorf("flag level = %v, want DEBUG", got)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "op", "divide")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "op=divide") {
		t.Errorf("warn record missing: %q", out)
	}
}
