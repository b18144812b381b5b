// Package logger writes structured JSON log lines for the university services.
// Every line carries a timestamp, a level, a message and the accumulated fields.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError

	// levelOff is above every writable level.
	levelOff
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the upper-case name of the level.
func (l Level) String() string {
	if l < LevelDebug || l >= levelOff {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel parses a level name case-insensitively. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field   { return Field{Key: key, Value: value} }
func Int(key string, value int) Field   { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }
func Any(key string, value any) Field   { return Field{Key: key, Value: value} }

// Err creates an "error" field; a nil error is logged as null.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a field holding d in its String form.
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.String()}
}

// University-related logging helpers.
func Component(name string) Field      { return String("component", name) }
func Operation(name string) Field      { return String("operation", name) }
func Course(name string) Field         { return String("course", name) }
func Categories(values []string) Field { return Any("categories", values) }
func RosterSize(n int) Field           { return Int("roster_size", n) }
func UniversityID(id string) Field     { return String("university_id", id) }
func EnrollmentID(id string) Field     { return String("enrollment_id", id) }
func EventType(name string) Field      { return String("event_type", name) }
func Latency(d time.Duration) Field    { return Duration("latency", d) }

// LogEntry is the JSON shape of one line.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Caller    string         `json:"caller,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     Level
	AddCaller bool
}

// DefaultOptions logs Info and above to stderr without caller information.
func DefaultOptions() Options {
	return Options{Output: os.Stderr, Level: LevelInfo}
}

// sink is shared by a logger and everything derived from it with With,
// so concurrent writes to one output never interleave.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

// Logger writes JSON lines at or above its level.
type Logger struct {
	sink      *sink
	level     Level
	addCaller bool
	fields    []Field
}

// New creates a Logger. A nil Output means stderr.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Logger{
		sink:      &sink{out: opts.Output},
		level:     opts.Level,
		addCaller: opts.AddCaller,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(Options{Output: io.Discard, Level: levelOff})
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// With returns a child logger that adds fields to every line.
func (l *Logger) With(fields ...Field) *Logger {
	child := *l
	child.fields = append(append(make([]Field, 0, len(l.fields)+len(fields)), l.fields...), fields...)
	return &child
}

func (l *Logger) Debug(msg string, fields ...Field) { l.write(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.write(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.write(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.write(LevelError, msg, fields) }

// write must be called directly from a level method: the caller lookup skips
// exactly write and that method.
func (l *Logger) write(level Level, msg string, fields []Field) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
	}

	if l.addCaller {
		if _, file, line, ok := runtime.Caller(2); ok {
			entry.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}

	// Later fields win over earlier ones with the same key.
	if n := len(l.fields) + len(fields); n > 0 {
		entry.Fields = make(map[string]any, n)
		for _, f := range l.fields {
			entry.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"timestamp":%q,"level":%q,"message":%q}`, entry.Timestamp, entry.Level, msg))
	}
	data = append(data, '\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = l.sink.out.Write(data)
}
