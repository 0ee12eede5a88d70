package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the unified logging interface used across components. It keeps
// call sites independent of the underlying backend (zerolog in production,
// the standard library logger where zerolog is unavailable).
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, v ...any)
	Println(v ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger returns a Logger writing human-readable output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: os.Stderr}
	return &ZerologAdapter{zl: zerolog.New(cw).With().Timestamp().Logger()}
}

// NewLogger returns a Logger writing to w, tagging every entry with the given
// component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{zl: zl}
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.zl.Info(), fields).Msg(msg)
}

// Error logs a message at error level with the given error attached.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.zl.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message, for compatibility with log.Printf call sites.
func (a *ZerologAdapter) Printf(format string, v ...any) {
	a.zl.Debug().Msgf(format, v...)
}

// Println logs its arguments separated by spaces, for compatibility with
// log.Println call sites.
func (a *ZerologAdapter) Println(v ...any) {
	a.zl.Debug().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// applyFields attaches structured fields to a zerolog event, dispatching on
// the dynamic type of each value.
func (a *ZerologAdapter) applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// StdLoggerAdapter adapts a standard library *log.Logger to the Logger
// interface. Fields are rendered as trailing key=value pairs.
type StdLoggerAdapter struct {
	l *log.Logger
}

// NewStdLoggerAdapter wraps an existing standard library logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

// Debug logs a message with a [DEBUG] prefix.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Println(append([]any{"[DEBUG]", msg}, fieldArgs(fields)...)...)
}

// Info logs a message with an [INFO] prefix.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Println(append([]any{"[INFO]", msg}, fieldArgs(fields)...)...)
}

// Error logs a message with an [ERROR] prefix and the error appended.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	args := []any{"[ERROR]", msg}
	if err != nil {
		args = append(args, "error="+err.Error())
	}
	a.l.Println(append(args, fieldArgs(fields)...)...)
}

// Printf delegates to the underlying logger's Printf.
func (a *StdLoggerAdapter) Printf(format string, v ...any) {
	a.l.Printf(format, v...)
}

// Println delegates to the underlying logger's Println.
func (a *StdLoggerAdapter) Println(v ...any) {
	a.l.Println(v...)
}

func fieldArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	return args
}
