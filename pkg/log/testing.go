// Package log provides testing utilities for structured logging.
//
// This file contains a logger implementation that captures log output in
// memory so tests can verify what pipeline components logged without
// touching stderr.
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// TestLogger is a logger implementation designed for testing. It captures
// all log messages in an internal buffer for later inspection.
type TestLogger struct {
	buffer *bytes.Buffer
	level  Level
	fields map[string]interface{}
}

// NewTestLogger creates a new TestLogger with the specified minimum level.
//
// Example:
//
//	logger, buffer := log.NewTestLogger(log.LevelDebug)
//	logger.Info("test message", "key", "value")
//	output := buffer.String()
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		buffer: buffer,
		level:  level,
		fields: make(map[string]interface{}),
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	if t.level <= LevelDebug {
		t.writeLog("DEBUG", msg, fields...)
	}
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	if t.level <= LevelInfo {
		t.writeLog("INFO", msg, fields...)
	}
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	if t.level <= LevelWarn {
		t.writeLog("WARN", msg, fields...)
	}
}

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) {
	if t.level <= LevelError {
		t.writeLog("ERROR", msg, fields...)
	}
}

// With implements Logger.With.
func (t *TestLogger) With(fields ...any) Logger {
	merged := make(map[string]interface{}, len(t.fields)+len(fields)/2)
	for k, v := range t.fields {
		merged[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		merged[fieldKey(fields[i])] = fields[i+1]
	}
	return &TestLogger{buffer: t.buffer, level: t.level, fields: merged}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= t.level
}

func (t *TestLogger) writeLog(level, msg string, fields ...any) {
	record := map[string]interface{}{
		"level":   level,
		"message": msg,
	}
	for k, v := range t.fields {
		record[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		switch v := fields[i+1].(type) {
		case error:
			record[fieldKey(fields[i])] = v.Error()
		default:
			record[fieldKey(fields[i])] = v
		}
	}
	line, err := json.Marshal(record)
	if err != nil {
		fmt.Fprintf(t.buffer, "{\"level\":%q,\"message\":%q}\n", level, msg)
		return
	}
	t.buffer.Write(line)
	t.buffer.WriteByte('\n')
}

// ContainsMessage reports whether any captured record has the given message.
func (t *TestLogger) ContainsMessage(msg string) bool {
	return strings.Contains(t.buffer.String(), fmt.Sprintf("\"message\":%q", msg))
}

// TestProvider is a LoggerProvider returning a single shared TestLogger.
type TestProvider struct {
	Logger *TestLogger
}

// GetLogger implements LoggerProvider.
func (p *TestProvider) GetLogger() Logger { return p.Logger }

// GetLoggerWithName implements LoggerProvider.
func (p *TestProvider) GetLoggerWithName(name string) Logger {
	return p.Logger.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.
func (p *TestProvider) SetLevel(level Level) { p.Logger.level = level }
