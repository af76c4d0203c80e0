// Package logger provides the global structured logger. The editor owns
// the terminal, so logs always go to a rotating file, never to stdout or
// stderr.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log       *slog.Logger
	logWriter *lumberjack.Logger
)

// Init initializes the global logger. If path is empty it defaults to
// ~/.config/hx/hx.log.
func Init(level, path string) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.TempDir()
		}
		logDir := filepath.Join(homeDir, ".config", "hx")
		_ = os.MkdirAll(logDir, 0755)
		path = filepath.Join(logDir, "hx.log")
	}

	logWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     7, // days
		Compress:   true,
	}

	log = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: slogLevel,
	}))
	slog.SetDefault(log)
}

// Close closes the log file.
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

func getLogger() *slog.Logger {
	if log != nil {
		return log
	}
	return slog.Default()
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}
