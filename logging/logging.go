// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging configures the process-wide slog logger.
//
// Output is human-readable text when written to a terminal and JSON lines
// otherwise, so containers and log shippers get structured records without
// extra flags:
//
//	logger := logging.Setup("info", os.Stderr)
//	logger.Info("listening", "port", 8088)
//
// Questionnaire answers are health data. Log field names, never values.
package logging

import (
	"io"
	"log/slog"

	"github.com/mattn/go-isatty"
)

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch s {
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

// IsTerminal reports whether stream is an interactive terminal. Any reader
// or writer without a file descriptor, such as a buffer, is not.
func IsTerminal(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New builds a logger writing to w at the given level
func New(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if IsTerminal(w) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup builds a logger and installs it as the slog default
func Setup(level string, w io.Writer) *slog.Logger {
	logger := New(level, w)
	slog.SetDefault(logger)
	return logger
}
