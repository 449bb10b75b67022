package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a test session
type Config struct {
	// Layout settings
	WorkDir    string
	ReportsDir string
	LogsDir    string

	// Logging settings
	LogLevel  string
	LogFormat string
	LogFile   string

	// Console settings
	NoColor bool

	// Command flags
	Flags Flags
}

// Flags holds command-line overrides. Empty values leave the config untouched.
type Flags struct {
	WorkDir    string
	ReportsDir string
	LogsDir    string
	LogLevel   string
	LogFormat  string
	LogFile    string
	NoColor    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		WorkDir:    DefaultWorkDir,
		ReportsDir: DefaultReportsDir,
		LogsDir:    DefaultLogsDir,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// Load creates a config, applies the work dir's .env file and the process
// environment, then the flags. Process environment wins over .env.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.WorkDir != "" {
		cfg.WorkDir = flags.WorkDir
	}

	dotenv, err := readEnvFile(filepath.Join(cfg.WorkDir, EnvFile))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	cfg.ApplyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return env, nil
}

// ApplyEnv overrides settings from the given lookup (os.LookupEnv shaped).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvReportsDir); ok && v != "" {
		c.ReportsDir = v
	}
	if v, ok := lookup(EnvLogsDir); ok && v != "" {
		c.LogsDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	// https://no-color.org: any non-empty value disables color
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		c.NoColor = true
	}
}

// ApplyFlags overrides settings with any non-empty flag
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.WorkDir != "" {
		c.WorkDir = flags.WorkDir
	}
	if flags.ReportsDir != "" {
		c.ReportsDir = flags.ReportsDir
	}
	if flags.LogsDir != "" {
		c.LogsDir = flags.LogsDir
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.LogFormat = flags.LogFormat
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
	if flags.NoColor {
		c.NoColor = true
	}
}

// Validate checks values that cannot be resolved later
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ReportsDir) == "" {
		return errors.New("reports dir must not be empty")
	}
	if strings.TrimSpace(c.LogsDir) == "" {
		return errors.New("logs dir must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// GetReportsPath returns the reports root, relative to WorkDir unless absolute
func (c *Config) GetReportsPath() string {
	if filepath.IsAbs(c.ReportsDir) {
		return filepath.Clean(c.ReportsDir)
	}
	return filepath.Join(c.WorkDir, c.ReportsDir)
}

// GetLogsPath returns the logs directory, nested under the reports root unless absolute
func (c *Config) GetLogsPath() string {
	if filepath.IsAbs(c.LogsDir) {
		return filepath.Clean(c.LogsDir)
	}
	return filepath.Join(c.GetReportsPath(), c.LogsDir)
}

// GetLogFilePath returns the log file path, or "" when no file sink is configured.
// Relative names resolve inside the logs directory.
func (c *Config) GetLogFilePath() string {
	if c.LogFile == "" {
		return ""
	}
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.GetLogsPath(), c.LogFile)
}

// Directories returns the directories a session start must guarantee, parents first
func (c *Config) Directories() []string {
	return []string{c.GetReportsPath(), c.GetLogsPath()}
}
