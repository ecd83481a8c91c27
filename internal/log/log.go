// Package log builds [slog.Handler]s for the atomwait command line tools.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatLogfmt = "logfmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// CreateHandler creates a [slog.Handler] writing to w.
//
// Text and logfmt output go through charmbracelet/log; json uses the
// standard library handler.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case FormatText, "":
		return newCharmHandler(w, level, charmlog.TextFormatter), nil
	case FormatLogfmt:
		return newCharmHandler(w, level, charmlog.LogfmtFormatter), nil
	}

	return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidArgument, logFormat)
}

func newCharmHandler(w io.Writer, level slog.Level, f charmlog.Formatter) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       f,
		ReportTimestamp: true,
	})
}

// GetLevel parses a level name. Levels slog has no direct equivalent for
// map onto the nearest one.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidArgument, level)
}
