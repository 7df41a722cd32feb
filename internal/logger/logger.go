package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	text  *log.Logger
	json  *slog.Logger
	level string
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger writing "text" ([LEVEL] lines) or "json"
// (one object per line) to w. Unknown formats fall back to text.
func NewWithFormat(level, format string, w io.Writer) Logger {
	l := &implLogger{level: strings.ToLower(level)}
	if strings.EqualFold(format, "json") {
		l.json = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		l.text = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewWithFormat("error", "text", io.Discard)
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level string, slevel slog.Level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	if l.json != nil {
		l.json.Log(ctx, slevel, fmt.Sprintf(msg, args...))
		return
	}
	l.text.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", slog.LevelDebug, msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", slog.LevelInfo, msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", slog.LevelWarn, msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", slog.LevelError, msg, args)
}
