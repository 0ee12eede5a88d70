// Package auditlog implements the append-only operation log. Entries are
// human-readable lines of the fixed shape
//
//	[YYYY-MM-DD HH:MM:SS] [LEVEL] message
//
// appended to a single file and synced to storage before each call returns.
// The file is opened once at startup and closed exactly once at shutdown;
// no entry is ever rewritten or removed.
package auditlog

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/mathmon/internal/errors"
	"github.com/agbru/mathmon/internal/format"
)

// TimeLayout is the timestamp layout of every log line (second resolution,
// local time).
const TimeLayout = "2006-01-02 15:04:05"

// Level identifies the severity of a log entry. All levels are always
// written; there is no filtering or suppression.
type Level int8

const (
	Info Level = iota
	Warning
	Error
	Critical
	Debug
)

// String returns the level name as it appears in the log file.
func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	case Debug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// zerologLevel maps an audit level onto the zerolog level used to emit it.
// Critical rides on zerolog's fatal level (WithLevel does not exit).
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case Warning:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	case Critical:
		return zerolog.FatalLevel
	case Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// levelNames maps zerolog's wire-level names back to the audit level names.
var levelNames = map[string]string{
	zerolog.LevelInfoValue:  "INFO",
	zerolog.LevelWarnValue:  "WARNING",
	zerolog.LevelErrorValue: "ERROR",
	zerolog.LevelFatalValue: "CRITICAL",
	zerolog.LevelDebugValue: "DEBUG",
}

// timeFormatOnce pins zerolog's timestamp field format to the audit layout.
// zerolog keeps this as package state, so it is set exactly once.
var timeFormatOnce sync.Once

// Logger appends leveled, timestamped lines to a single file. It owns the
// file handle: New opens it, Close releases it. A Logger is used from a
// single goroutine; it performs no internal locking.
type Logger struct {
	path      string
	file      *os.File
	zl        zerolog.Logger
	closeOnce sync.Once
	closeErr  error
}

// New opens (or creates) the log file at path in append mode and writes the
// opening "system started" entry. It fails with apperrors.LogOpenError when
// the file cannot be opened for writing.
func New(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, apperrors.LogOpenError{Path: path, Cause: err}
	}

	timeFormatOnce.Do(func() {
		zerolog.TimeFieldFormat = TimeLayout
	})

	cw := zerolog.ConsoleWriter{
		Out:     syncWriter{file: file},
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatTimestamp: func(i any) string { return fmt.Sprintf("[%s]", i) },
		FormatLevel: func(i any) string {
			name, ok := levelNames[fmt.Sprintf("%s", i)]
			if !ok {
				name = strings.ToUpper(fmt.Sprintf("%s", i))
			}
			return "[" + name + "]"
		},
		FormatMessage: func(i any) string { return fmt.Sprintf("%s", i) },
	}

	l := &Logger{
		path: path,
		file: file,
		zl:   zerolog.New(cw).With().Timestamp().Logger(),
	}
	l.Log(Info, "system started")
	return l, nil
}

// Path returns the log file path.
func (l *Logger) Path() string { return l.path }

// Log appends one entry at the given level. The entry is synced to storage
// before Log returns.
func (l *Logger) Log(level Level, message string) {
	l.zl.WithLevel(level.zerologLevel()).Msg(message)
}

// LogError appends the error's message at ERROR level.
func (l *Logger) LogError(err error) {
	l.Log(Error, "error captured: "+err.Error())
}

// LogMetrics appends one INFO entry summarizing operation counts and the
// success rate (two-decimal percentage, 0 when total is 0).
func (l *Logger) LogMetrics(total, successes, failures int) {
	l.Log(Info, fmt.Sprintf("metrics - total: %d | successful: %d | failed: %d | success rate: %s",
		total, successes, failures,
		format.FormatPercent(format.SuccessRate(successes, total))))
}

// Close writes the final "system finished" entry and releases the file
// handle. It is safe to call more than once; the entry is written and the
// handle released exactly once.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.Log(Info, "system finished")
		l.closeErr = l.file.Close()
	})
	return l.closeErr
}

// syncWriter writes through to the file and fsyncs after every write, making
// each log call durable on return.
type syncWriter struct {
	file *os.File
}

func (w syncWriter) Write(p []byte) (int, error) {
	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	return n, w.file.Sync()
}
