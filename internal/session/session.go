// Package session owns the per-process test session: its configuration,
// the shared logger and console, and the hooks run once before any test.
package session

import (
	"fmt"

	"tsb/internal/bootstrap"
	"tsb/internal/config"
	"tsb/internal/logging"
	"tsb/internal/ui"
)

// Hook runs at session start. A non-nil error aborts the session.
type Hook func(s *Session) error

type namedHook struct {
	name string
	fn   Hook
}

// Session carries the handles shared by every test in the process.
// Build it once with New and pass it to whatever needs it.
type Session struct {
	Config  *config.Config
	Logger  *logging.Logger
	Console *ui.Console

	loggerName string
	hooks      []namedHook
	logFile    string
}

// Option customizes a Session
type Option func(*Session)

// WithLogger uses the given logger instead of building one from config
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.Logger = l }
}

// WithConsole uses the given console instead of building one from config
func WithConsole(c *ui.Console) Option {
	return func(s *Session) { s.Console = c }
}

// WithLoggerName overrides the logger name (default "tsb")
func WithLoggerName(name string) Option {
	return func(s *Session) { s.loggerName = name }
}

// New creates a Session. The report directory hook is always registered first.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Session{Config: cfg, loggerName: config.DefaultLoggerName}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = logging.New(logging.Config{
			Name:   s.loggerName,
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
	}
	if s.Console == nil {
		s.Console = ui.NewConsole(nil, cfg.NoColor)
	}

	s.OnStart("ensure-report-dirs", EnsureReportDirs)
	return s, nil
}

// OnStart registers a hook to run at session start, after those already registered
func (s *Session) OnStart(name string, hook Hook) {
	s.hooks = append(s.hooks, namedHook{name: name, fn: hook})
}

// OnSessionStart runs every start hook in registration order and stops at
// the first failure. Safe to call more than once.
func (s *Session) OnSessionStart() error {
	for _, h := range s.hooks {
		if err := h.fn(s); err != nil {
			s.Logger.Error("session start failed", "hook", h.name, "error", err)
			return fmt.Errorf("session start hook %s: %w", h.name, err)
		}
	}
	return nil
}

// Close releases the log file sink, if any
func (s *Session) Close() error {
	s.logFile = ""
	return s.Logger.Close()
}

// EnsureReportDirs creates the reports root and logs directory, then
// attaches the configured log file.
func EnsureReportDirs(s *Session) error {
	dirs := s.Config.Directories()
	if err := bootstrap.EnsureDirectories(dirs...); err != nil {
		return err
	}
	for _, d := range dirs {
		s.Logger.Debug("directory ready", "path", d)
	}

	if path := s.Config.GetLogFilePath(); path != "" && path != s.logFile {
		if err := s.Logger.AttachFile(path); err != nil {
			return err
		}
		s.logFile = path
	}

	s.Logger.Info("report directories ready",
		"reports", s.Config.GetReportsPath(),
		"logs", s.Config.GetLogsPath())
	return nil
}
