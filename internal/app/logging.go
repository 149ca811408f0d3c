package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if l < LogLevelDebug || l > LogLevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel parses a logging.level setting. Unknown names log at info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// field is one key=value pair appended to every line.
type field struct {
	key   string
	value any
}

// logSink is the writer and level shared by a logger and the loggers
// derived from it.
type logSink struct {
	mu       sync.Mutex
	level    LogLevel
	output   io.Writer
	disabled bool
}

// Logger writes levelled, timestamped lines with attached fields.
type Logger struct {
	sink   *logSink
	prefix string
	fields []field
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		sink:   &logSink{level: cfg.Level, output: cfg.Output},
		prefix: cfg.Prefix,
	}
}

// NullLogger is a logger that discards all output.
var NullLogger = &Logger{sink: &logSink{output: io.Discard, disabled: true}}

// WithField returns a logger that adds key=value to every line. It shares
// level and output with l. Setting an existing key replaces its value.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make([]field, 0, len(l.fields)+1)
	for _, f := range l.fields {
		if f.key != key {
			fields = append(fields, f)
		}
	}
	fields = append(fields, field{key: key, value: value})
	return &Logger{sink: l.sink, prefix: l.prefix, fields: fields}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level for l and every logger derived
// from it.
func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// Disable disables all logging.
func (l *Logger) Disable() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.disabled = true
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled || level < s.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&b, " [%s] ", level)
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	for _, f := range l.fields {
		fmt.Fprintf(&b, " %s=%v", f.key, f.value)
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(s.output, b.String())
}

// OpenLogFile builds the logger described by the logging settings. The
// terminal belongs to the viewer while it runs, so without a file the
// logger is disabled. The returned closer is never nil.
func OpenLogFile(level, path string) (*Logger, io.Closer, error) {
	if path == "" {
		return NullLogger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, NewOperationError("open", path, err).WithContext("log file")
	}
	l := NewLogger(LoggerConfig{Level: ParseLogLevel(level), Output: f, Prefix: "hexstorm"})
	return l, f, nil
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}
