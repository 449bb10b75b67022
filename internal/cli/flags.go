package cli

import (
	"tsb/internal/config"

	"github.com/spf13/pflag"
)

// Flags holds command-line flags
type Flags struct {
	WorkDir    string
	ReportsDir string
	LogsDir    string
	LogLevel   string
	LogFormat  string
	LogFile    string
	NoColor    bool
}

// Bind registers the flags on a flag set
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.WorkDir, "work-dir", "w", "", "Directory the report tree is created in (default: current directory)")
	fs.StringVarP(&f.ReportsDir, "reports-dir", "r", "", "Reports root, relative to the work dir (default: reports)")
	fs.StringVarP(&f.LogsDir, "logs-dir", "l", "", "Logs directory, relative to the reports root (default: logs)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.LogFormat, "log-format", "", "Log format: text or json")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file inside the logs directory")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		WorkDir:    f.WorkDir,
		ReportsDir: f.ReportsDir,
		LogsDir:    f.LogsDir,
		LogLevel:   f.LogLevel,
		LogFormat:  f.LogFormat,
		LogFile:    f.LogFile,
		NoColor:    f.NoColor,
	}
}
