// SPDX-License-Identifier: EPL-2.0

// Package logging configures the process-wide slog logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var ErrUnknownLevel = errors.New("unexpected log level")

// ConfigureDefaultLogger installs the default slog logger.
//
// logLevel is one of none, error, warn, info or debug. With an empty logFile
// records go to stdout as text; otherwise the file is truncated and receives
// JSON. The returned file, when not nil, must be closed by the caller.
func ConfigureDefaultLogger(logLevel string, logFile string, loggerOptions slog.HandlerOptions) (*os.File, error) {
	switch logLevel {
	case "none":
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	case "error":
		loggerOptions.Level = slog.LevelError
	case "warn":
		loggerOptions.Level = slog.LevelWarn
	case "info":
		loggerOptions.Level = slog.LevelInfo
	case "debug":
		loggerOptions.Level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, logLevel)
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &loggerOptions)))
		return nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &loggerOptions)))

	return f, nil
}
