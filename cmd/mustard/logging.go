// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// setupLogging builds the run logger writing to w. Every record carries the
// run id and the subcommand name.
func setupLogging(w io.Writer, format, command string) (*slog.Logger, error) {
	var handler slog.Handler

	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'json' or 'text'", format)
	}

	return slog.New(handler).With("run_id", ulid.Make().String(), "command", command), nil
}

// logError logs err with its oops code and context when it has them.
func logError(logger *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{"error", oopsErr.Error()}
		if code := oopsErr.Code(); code != nil {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
		logger.Error(msg, attrs...)
		return
	}
	logger.Error(msg, "error", err)
}
