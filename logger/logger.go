// Package logger provides a minimal slog-based logging wrapper.
//
// The TUI owns the terminal, so interactive runs log to a file while the
// one-shot subcommands may log to stderr.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Config describes logger settings.
type Config struct {
	Enabled bool
	Level   string
	Stderr  bool
	File    string
}

var (
	mu   sync.RWMutex
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
	file *os.File
)

// Init configures the package logger. A relative cfg.File is resolved
// against dir. Calling Init again closes the previously opened file.
func Init(cfg Config, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	if !cfg.Enabled {
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	var writers []io.Writer
	var initErr error
	if cfg.File != "" {
		path := expandPath(cfg.File, dir)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			initErr = errors.Wrap(err, "logger: create log dir")
		} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
			initErr = errors.Wrap(err, "logger: open log file")
		} else {
			file = f
			writers = append(writers, f)
		}
	}
	if cfg.Stderr {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	base = slog.New(slog.NewTextHandler(io.MultiWriter(writers...), opts))
	return initErr
}

// SetOutput routes all records to w. Intended for tests.
func SetOutput(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// Close releases the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

func log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	l := base
	mu.RUnlock()
	l.Log(context.Background(), level, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func expandPath(path, dir string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
