package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/rs/zerolog"

	cgerrors "github.com/YuminosukeSato/chordgen/pkg/errors"
)

// SetupLogger configures the process-wide slog default with a JSON handler
// and stacktrace extraction for cockroachdb errors.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// ===========================================================================
//
//	zerolog-backed Logger provider
//
// ===========================================================================

// ZerologProvider is the default LoggerProvider, backed by zerolog.
type ZerologProvider struct {
	mu   sync.Mutex
	base zerolog.Logger
}

// NewZerologProvider creates a provider writing JSON records to stderr at
// the given minimum level.
func NewZerologProvider(level Level) *ZerologProvider {
	zl := zerolog.New(os.Stderr).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologProvider{base: zl}
}

// GetLogger returns the default logger instance.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &zerologLogger{zl: p.base}
}

// GetLoggerWithName returns a logger tagged with a component identifier.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &zerologLogger{zl: p.base.With().Str(ComponentKey, name).Logger()}
}

// SetLevel sets the minimum log level for loggers from this provider.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.base = p.base.Level(toZerologLevel(level))
}

func toZerologLevel(l Level) zerolog.Level {
	switch {
	case l <= LevelDebug:
		return zerolog.DebugLevel
	case l <= LevelInfo:
		return zerolog.InfoLevel
	case l <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	appendFields(l.zl.Debug(), fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	appendFields(l.zl.Info(), fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	appendFields(l.zl.Warn(), fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	ev := l.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			fields = fields[1:]
		}
	}
	appendFields(ev, fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		ctx = ctx.Interface(fieldKey(fields[i]), fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel()
}

func appendFields(ev *zerolog.Event, fields []any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fieldKey(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		case zerolog.LogObjectMarshaler:
			ev = ev.Object(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}

func fieldKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// ===========================================================================
//
//	Package-level provider
//
// ===========================================================================

var (
	providerMu      sync.Mutex
	defaultProvider LoggerProvider = NewZerologProvider(LevelInfo)
)

// SetProvider replaces the package-level provider. Tests use this to capture
// log output produced by pipeline components.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// GetProvider returns the current package-level provider so callers can
// restore it after a temporary replacement.
func GetProvider() LoggerProvider {
	providerMu.Lock()
	defer providerMu.Unlock()
	return defaultProvider
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.Lock()
	defer providerMu.Unlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.Lock()
	defer providerMu.Unlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLevel sets the minimum log level on the current provider.
func SetLevel(level Level) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider.SetLevel(level)
}

func init() {
	// Route pkg/errors warnings (UNK substitutions, unseen metadata values)
	// into the structured log stream.
	cgerrors.SetZerologWarnFunc(func(warning error) {
		GetLogger().Warn("fallback applied", "warning", warning)
	})
}
