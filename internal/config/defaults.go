package config

const (
	// DefaultWorkDir is the directory the report tree is created relative to
	DefaultWorkDir = "."
	// DefaultReportsDir is the reports root
	DefaultReportsDir = "reports"
	// DefaultLogsDir is the logs directory, nested under the reports root
	DefaultLogsDir = "logs"
	// DefaultLogLevel is the default logger level
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default logger output format
	DefaultLogFormat = "text"
	// DefaultLoggerName names the session logger
	DefaultLoggerName = "tsb"
	// EnvFile is the optional dotenv file read from the work dir
	EnvFile = ".env"
)

// Environment variables that override defaults
const (
	EnvReportsDir = "TSB_REPORTS_DIR"
	EnvLogsDir    = "TSB_LOGS_DIR"
	EnvLogLevel   = "TSB_LOG_LEVEL"
	EnvLogFormat  = "TSB_LOG_FORMAT"
	EnvLogFile    = "TSB_LOG_FILE"
	EnvNoColor    = "NO_COLOR"
)
