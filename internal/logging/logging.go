// Package logging sets up the structured logger. Records go to stderr and,
// when writable, to an append-only log file so every run leaves a
// timestamped trail on the host.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup returns a logger at the given level writing to stderr and the
// append-only file at path. If the file cannot be opened the logger
// degrades to stderr only. The returned close function flushes the file
// handle and is safe to call when no file was opened.
func Setup(path, level string) (*slog.Logger, func() error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err == nil {
		w = io.MultiWriter(os.Stderr, f)
		closeFn = f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
	if err != nil {
		logger.Warn("log file not writable, logging to stderr only", "path", path, "error", err)
	}
	return logger, closeFn
}

func parseLevel(level string) slog.Level {
	switch level {
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
