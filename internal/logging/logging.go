package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Logger is a named structured logger whose output can gain a file sink
// after construction.
type Logger struct {
	*slog.Logger
	sink *sink
}

// Config represents logger configuration
type Config struct {
	Name   string
	Level  string
	Format string // "json" or "text"
	Output io.Writer
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger. Every record carries a "logger" attribute with the name.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	s := &sink{writers: []io.Writer{output}}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(s, opts)
	} else {
		handler = slog.NewTextHandler(s, opts)
	}

	l := slog.New(handler)
	if cfg.Name != "" {
		l = l.With("logger", cfg.Name)
	}
	return &Logger{Logger: l, sink: s}
}

// With returns a child logger sharing this logger's outputs
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), sink: l.sink}
}

// AttachFile appends records to the file at path in addition to the
// existing output. The parent directory must already exist.
func (l *Logger) AttachFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.sink.add(f)
	return nil
}

// Close closes any attached files. The base output is left open.
func (l *Logger) Close() error {
	return l.sink.close()
}

// sink fans writes out to every registered writer
type sink struct {
	mu      sync.Mutex
	writers []io.Writer
	files   []*os.File
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.writers {
		if _, err := w.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (s *sink) add(f *os.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writers = append(s.writers, f)
	s.files = append(s.files, f)
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, f := range s.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.writers = s.writers[:len(s.writers)-len(s.files)]
	s.files = nil
	return firstErr
}
