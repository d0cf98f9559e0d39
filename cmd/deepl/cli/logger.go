// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvLogLevel names the environment variable holding the log level
// ("debug", "info", "warn", "error").
const EnvLogLevel = "DEEPL_LOG_LEVEL"

// NewCommandLogger creates a structured logger writing to w. When w is a
// terminal, uses slog.TextHandler for human-readable output. When w is
// piped or redirected, uses slog.JSONHandler for machine-parseable
// output.
//
// Results go to stdout and never pass through the logger, so raising
// the level with DEEPL_LOG_LEVEL=debug does not disturb piped output.
func NewCommandLogger(w io.Writer, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// LogLevel parses the level from DEEPL_LOG_LEVEL. Unset or unparseable
// values yield slog.LevelWarn.
func LogLevel(getenv func(string) string) slog.Level {
	value := strings.TrimSpace(getenv(EnvLogLevel))
	if value == "" {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// isTerminal reports whether w is an *os.File attached to a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
