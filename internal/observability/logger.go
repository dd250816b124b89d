// Package observability provides structured logging and Prometheus metrics
// for the listing service. Logs are JSON lines on stdout, which CloudWatch
// ingests as-is when running on Lambda.
package observability

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel converts a string representation to a Level.
// Unrecognized levels default to InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes structured JSON log entries with level filtering.
// Fields are passed as variadic key/value pairs.
type Logger struct {
	mu       sync.Mutex
	out      *log.Logger
	minLevel Level
	fields   map[string]interface{}
}

// NewLogger creates a logger writing to output at the given minimum level.
// A nil output defaults to os.Stdout.
func NewLogger(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}
	return &Logger{
		out:      log.New(output, "", 0),
		minLevel: ParseLevel(level),
		fields:   make(map[string]interface{}),
	}
}

// WithFields returns a new Logger that includes fields in every entry.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &Logger{
		out:      l.out,
		minLevel: l.minLevel,
		fields:   newFields,
	}
}

// Debug logs debug messages.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.log(DebugLevel, msg, fields...)
}

// Info logs informational messages.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.log(InfoLevel, msg, fields...)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.log(WarnLevel, msg, fields...)
}

// Error logs error messages.
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.log(ErrorLevel, msg, fields...)
}

func (l *Logger) log(level Level, msg string, fields ...interface{}) {
	if level < l.minLevel {
		return
	}

	entry := make(map[string]interface{}, len(l.fields)+len(fields)/2+3)
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = msg

	for k, v := range l.fields {
		entry[k] = v
	}

	// Variadic fields come as key1, value1, key2, value2, ...
	for i := 0; i < len(fields)-1; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, ok := fields[i+1].(error); ok && err != nil {
			entry[key] = err.Error()
			continue
		}
		entry[key] = fields[i+1]
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		l.mu.Lock()
		l.out.Printf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err)
		l.mu.Unlock()
		return
	}

	l.mu.Lock()
	l.out.Println(string(jsonBytes))
	l.mu.Unlock()
}
