package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the process logger and installs it as the slog default.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unable to setup logger, LOG_LEVEL not recognised [%s]", level)
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unable to setup logger, LOG_FORMAT not recognised [%s]", format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
