package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	current = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Init replaces the process logger. Output is text, filtered at level.
func Init(w io.Writer, level slog.Level) {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	mu.Lock()
	current = l
	mu.Unlock()
	slog.SetDefault(l)
}

// ParseLevel accepts debug, info, warn or error (any case).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func logMessage(level slog.Level, subsystem string, err error, message string, args ...interface{}) {
	mu.RLock()
	l := current
	mu.RUnlock()

	if !l.Enabled(context.Background(), level) {
		return
	}
	msg := message
	if len(args) > 0 {
		msg = fmt.Sprintf(message, args...)
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.LogAttrs(context.Background(), level, msg, attrs...)
}

func Info(subsystem, message string, args ...interface{}) {
	logMessage(slog.LevelInfo, subsystem, nil, message, args...)
}

func Warn(subsystem, message string, args ...interface{}) {
	logMessage(slog.LevelWarn, subsystem, nil, message, args...)
}

func Error(subsystem string, err error, message string, args ...interface{}) {
	logMessage(slog.LevelError, subsystem, err, message, args...)
}

func Debug(subsystem, message string, args ...interface{}) {
	logMessage(slog.LevelDebug, subsystem, nil, message, args...)
}
