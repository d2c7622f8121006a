// Package log provides a structured logging interface for chordgen's data
// preparation and generation pipelines.
//
// The package defines a minimal, slog-compatible logging interface so the
// backing implementation can be swapped freely. The default provider is
// backed by zerolog; a JSON slog setup and an in-memory test logger are also
// available. Standard attribute keys for pipeline operations live in
// attributes.go so that log output stays analyzable across packages.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("preprocessing").With(
//	    log.OperationKey, "fit",
//	)
//	logger.Info("vocabulary fitted",
//	    log.VocabSizeKey, 87,
//	    log.SamplesKey, 1512,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. The interface supports contextual
// chaining through With, which returns a logger with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error value it is attached as the error
	// attribute, including stack trace information when available.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It exists for dependency
// injection and for tests that need to capture output.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}
