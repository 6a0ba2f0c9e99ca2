// Package logging opens the structured file logger used across usersearch.
//
// The terminal belongs to the UI, so log output always goes to a file. An
// empty path yields a logger that discards everything.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Options configure the file logger.
type Options struct {
	Path   string
	Level  string
	Format string
}

// New opens (creating if needed) the log file and returns a logger writing
// to it along with a function that closes the file.
func New(opts Options) (*clog.Logger, func() error, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return Discard(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, opts), f.Close, nil
}

func newLogger(w io.Writer, opts Options) *clog.Logger {
	logger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormat(opts.Format),
	})
	return logger.With("pid", os.Getpid())
}

// Discard returns a logger that writes nowhere.
func Discard() *clog.Logger {
	return clog.New(io.Discard)
}

// ParseLevel maps a level name to a log level. Unknown names map to info.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

// ParseFormat maps a format name to a formatter. Unknown names map to text.
func ParseFormat(format string) clog.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return clog.JSONFormatter
	case "logfmt":
		return clog.LogfmtFormatter
	default:
		return clog.TextFormatter
	}
}
