package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return New(f), cleanup, nil
}

// Open returns a file logger for path, or a discarding logger when path is
// empty or cannot be opened. The cleanup func is never nil.
func Open(path string) (*Logger, func()) {
	if path == "" {
		return Discard(), func() {}
	}
	l, cleanup, err := NewFileLogger(path)
	if err != nil {
		return Discard(), func() {}
	}
	return l, cleanup
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// BuildStarted logs the start of a batch conversion
func (l *Logger) BuildStarted(manifest string, objects int) {
	l.Info("build started",
		"manifest", manifest,
		"objects", objects)
}

// BuildCompleted logs the completion of a batch conversion
func (l *Logger) BuildCompleted(converted, skipped, errors int, duration time.Duration) {
	l.Info("build completed",
		"converted", converted,
		"skipped", skipped,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// ObjectConverted logs a converted docstring
func (l *Logger) ObjectConverted(kind, name, convention string) {
	l.Debug("docstring converted",
		"kind", kind,
		"name", name,
		"convention", convention)
}

// ObjectSkipped logs when an object is left alone
func (l *Logger) ObjectSkipped(name, reason string) {
	l.Debug("docstring skipped",
		"name", name,
		"reason", reason)
}

// ConversionError logs a failed conversion
func (l *Logger) ConversionError(name string, err error) {
	l.Error("conversion failed",
		"name", name,
		"error", err)
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ManifestChanged logs a manifest change picked up by watch
func (l *Logger) ManifestChanged(path string) {
	l.Info("manifest changed",
		"manifest", path)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(workers int, format string, interval time.Duration) {
	l.Debug("config loaded",
		"workers", workers,
		"output_format", format,
		"interval", interval)
}
