package logging

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger is the structured logging surface used by the demo commands. The
// parser core never logs; it only returns error values.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// DefaultLogger writes timestamped lines to stdout.
type DefaultLogger struct {
	logger *log.Logger
}

func (l *DefaultLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields...) }
func (l *DefaultLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields...) }
func (l *DefaultLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields...) }
func (l *DefaultLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields...) }

func (l *DefaultLogger) log(level, msg string, fields ...Field) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	output := fmt.Sprintf("[%s] %s: %s", timestamp, level, msg)

	if len(fields) > 0 {
		output += " |"
		for _, f := range fields {
			output += fmt.Sprintf(" %s=%v", f.Key, truncateValue(f.Value))
		}
	}

	if l.logger == nil {
		l.logger = log.New(os.Stdout, "", 0)
	}

	l.logger.Println(output)
}

// truncateValue keeps log lines readable when a request target or header
// value is very long.
func truncateValue(v interface{}) interface{} {
	if s, ok := v.(string); ok && len(s) > 100 {
		return s[:100] + "...[truncated]"
	}
	return v
}

// NullLogger discards all logs (for testing).
type NullLogger struct{}

func (NullLogger) Debug(msg string, fields ...Field) {}
func (NullLogger) Info(msg string, fields ...Field)  {}
func (NullLogger) Warn(msg string, fields ...Field)  {}
func (NullLogger) Error(msg string, fields ...Field) {}
