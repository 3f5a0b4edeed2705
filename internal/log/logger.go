// Package log provides the structured logger used across the showcase.
// It is a thin layer over logrus that keeps a small, printf-style API and
// key/value fields through F.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	debug atomic.Bool
	std   atomic.Pointer[Logger]
)

func init() {
	std.Store(NewLogger())
}

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger writes leveled, structured log entries.
type Logger struct {
	entry *logrus.Entry
	level *atomic.Uint32
}

// Option configures a Logger created by NewLogger.
type Option func(*logrus.Logger, *atomic.Uint32)

// WithOutput sends log entries to w.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger, _ *atomic.Uint32) {
		l.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON output.
func WithJSON() Option {
	return func(l *logrus.Logger, _ *atomic.Uint32) {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "caller",
			},
		})
	}
}

// WithLevel sets the minimum level. Unknown names leave the default (info).
func WithLevel(name string) Option {
	return func(_ *logrus.Logger, lv *atomic.Uint32) {
		if parsed, err := ParseLevel(name); err == nil {
			lv.Store(uint32(parsed))
		}
	}
}

// NewLogger creates a logger writing text entries to stderr at info level.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.TraceLevel)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	level := &atomic.Uint32{}
	level.Store(uint32(logrus.InfoLevel))
	for _, opt := range opts {
		opt(base, level)
	}
	return &Logger{entry: logrus.NewEntry(base), level: level}
}

// ParseLevel maps a level name (debug, info, warn, error) to a logrus level.
func ParseLevel(name string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	}
	return logrus.InfoLevel, fmt.Errorf("unknown log level %q", name)
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), level: l.level}
}

// SetLevel changes the minimum level of l and every logger derived from it.
func (l *Logger) SetLevel(name string) error {
	parsed, err := ParseLevel(name)
	if err != nil {
		return err
	}
	l.level.Store(uint32(parsed))
	return nil
}

func (l *Logger) enabled(lv logrus.Level) bool {
	if lv == logrus.DebugLevel && debug.Load() {
		return true
	}
	return lv <= logrus.Level(l.level.Load())
}

func (l *Logger) log(lv logrus.Level, msg string) {
	if l.enabled(lv) {
		l.entry.Log(lv, msg)
	}
}

func (l *Logger) Info(msg string) { l.log(logrus.InfoLevel, msg) }
func (l *Logger) Infof(format string, args ...any) {
	l.log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}
func (l *Logger) Warn(msg string) { l.log(logrus.WarnLevel, msg) }
func (l *Logger) Warnf(format string, args ...any) {
	l.log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}
func (l *Logger) Error(msg string) { l.log(logrus.ErrorLevel, msg) }
func (l *Logger) Errorf(format string, args ...any) {
	l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}
func (l *Logger) Debug(msg string) { l.log(logrus.DebugLevel, msg) }
func (l *Logger) Debugf(format string, args ...any) {
	l.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
}

// SetDebug forces debug entries on for every logger.
func SetDebug(on bool) {
	debug.Store(on)
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	std.Store(NewLogger(opts...))
}

// Default returns the package logger.
func Default() *Logger {
	return std.Load()
}

// SetLevel changes the package logger level.
func SetLevel(name string) error {
	return Default().SetLevel(name)
}

// With returns a child of the package logger carrying fields.
func With(fields ...Field) *Logger {
	return Default().With(fields...)
}

func Info(msg string)                   { Default().Info(msg) }
func Infof(format string, args ...any)  { Default().Infof(format, args...) }
func Warn(msg string)                   { Default().Warn(msg) }
func Warnf(format string, args ...any)  { Default().Warnf(format, args...) }
func Error(msg string)                  { Default().Error(msg) }
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }
func Debug(msg string)                  { Default().Debug(msg) }
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }
