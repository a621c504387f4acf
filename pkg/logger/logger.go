// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the MCP_DEBUG environment variable:
//   export MCP_DEBUG=1
//
// By default, debug logging is disabled to reduce noise in normal operation.
// The binary calls Configure once its configuration is loaded, which may
// also add a log file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	Configure(IsTruthy(os.Getenv("MCP_DEBUG")), os.Stderr)
}

// IsTruthy reports whether an environment value switches a flag on.
// Empty, "0" and "false" (any case) are off.
func IsTruthy(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && strings.ToLower(v) != "false" && v != "0"
}

// Configure replaces the global logger with a text logger writing to w.
func Configure(debug bool, w io.Writer) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	handler := slog.NewTextHandler(w, opts)
	Logger = slog.New(handler)

	// Replace the default slog logger too
	slog.SetDefault(Logger)
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
