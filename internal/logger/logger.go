package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Format selects the output encoding.
type Format int

const (
	TextFormat Format = iota
	JSONFormat
)

// ParseFormat maps a configuration string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return JSONFormat
	}
	return TextFormat
}

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Component string         `json:"component,omitempty"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger is a leveled logger with an optional component tag. It is safe
// for concurrent use.
type Logger struct {
	mu        sync.Mutex
	level     Level
	format    Format
	output    io.Writer
	component string
}

// Config holds logger construction options.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// New creates a logger from the given configuration.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Logger{
		level:  cfg.Level,
		format: cfg.Format,
		output: cfg.Output,
	}
}

// NewDefault creates a text logger at INFO on stdout.
func NewDefault() *Logger {
	return New(Config{Level: INFO, Format: TextFormat})
}

// WithComponent returns a logger that tags every entry with the
// component name. The child shares the parent's output and level.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		format:    l.format,
		output:    l.output,
		component: component,
	}
}

func (l *Logger) log(level Level, message string, fields map[string]any) {
	if level < l.level {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Component: l.component,
		Message:   message,
		Fields:    fields,
	}

	var line string
	if l.format == JSONFormat {
		b, _ := json.Marshal(e)
		line = string(b) + "\n"
	} else {
		line = formatText(e)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write([]byte(line))
}

func formatText(e entry) string {
	parts := []string{fmt.Sprintf("[%s] %s", e.Timestamp, e.Level)}
	if e.Component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Component))
	}
	parts = append(parts, e.Message)
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kv := make([]string, 0, len(keys))
		for _, k := range keys {
			kv = append(kv, fmt.Sprintf("%s=%v", k, e.Fields[k]))
		}
		parts = append(parts, strings.Join(kv, " "))
	}
	return strings.Join(parts, " ") + "\n"
}

// Debug logs a debug message with optional structured fields.
func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.log(DEBUG, message, firstField(fields))
}

// Info logs an info message with optional structured fields.
func (l *Logger) Info(message string, fields ...map[string]any) {
	l.log(INFO, message, firstField(fields))
}

// Warn logs a warning with optional structured fields.
func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.log(WARN, message, firstField(fields))
}

// Error logs an error with optional structured fields.
func (l *Logger) Error(message string, err error, fields ...map[string]any) {
	f := firstField(fields)
	if err != nil {
		if f == nil {
			f = map[string]any{}
		}
		f["error"] = err.Error()
	}
	l.log(ERROR, message, f)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...), nil)
}

func firstField(fields []map[string]any) map[string]any {
	if len(fields) > 0 {
		return fields[0]
	}
	return nil
}
