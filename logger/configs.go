package logger

// LogLevel represents the minimum severity level a LoggerClient will emit.
type LogLevel = string

const (
	// Debug enables the most verbose logging, including debug-level messages.
	Debug LogLevel = "debug"
	// Info is the default logging level for general application progress.
	Info LogLevel = "info"
	// Warning enables logging of warnings and more severe messages only.
	Warning LogLevel = "warning"
	// Error enables logging of errors only.
	Error LogLevel = "error"
)

// Config defines the configuration used to construct a LoggerClient.
type Config struct {
	// Level sets the minimum severity level that will be logged.
	Level LogLevel

	// ServiceName identifies the service in log output.
	ServiceName string

	// CallerSkip controls how many stack frames to skip when reporting the
	// caller of a log statement. Defaults to 1 if not set.
	CallerSkip int

	// EnableTracing, when true, causes logging methods to extract trace
	// context and include trace/span IDs in log entries.
	EnableTracing bool
}
