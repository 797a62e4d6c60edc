// Package logger provides a printf-style leveled logger on top of log/slog.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger writes leveled messages to stdout and, optionally, to a file.
type Logger struct {
	log  *slog.Logger
	file *os.File
	exit func(code int)
}

// New creates a logger. An empty filePath disables file output.
func New(filePath, level string) (*Logger, error) {
	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	l := NewWithWriter(out, level)
	l.file = file
	return l, nil
}

// NewWithWriter creates a logger writing to w. Used in tests.
func NewWithWriter(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{
		log:  slog.New(handler),
		exit: os.Exit,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(slog.LevelDebug, format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(slog.LevelInfo, format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(slog.LevelWarn, format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(slog.LevelError, format, v...)
}

// Fatal logs at error level and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(slog.LevelError, format, v...)
	_ = l.Close()
	l.exit(1)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) write(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	l.log.Log(ctx, level, fmt.Sprintf(format, v...))
}
