// Package logging builds the file logger used by the terminal front end.
// The TUI owns stdout, so log records go to a file instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix tags every record written by the game.
const Prefix = "lightsout"

// Open creates a logger writing to path at the named level.
// When err is nil the returned close function is non-nil and releases the file.
func Open(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}

	return New(f, lvl), f.Close, nil
}

// New creates a logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
