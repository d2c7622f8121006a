package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	cgerrors "github.com/YuminosukeSato/chordgen/pkg/errors"
)

// TestErrFmtHandlerStacktrace tests stacktrace extraction for errors carrying
// cockroachdb stack information
func TestErrFmtHandlerStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := cgerrors.New("model backend unavailable")
	logger.Error("generation failed", ErrAttr(err))

	var record map[string]interface{}
	if unmarshalErr := json.Unmarshal(buf.Bytes(), &record); unmarshalErr != nil {
		t.Fatalf("handler did not produce valid JSON: %v\n%s", unmarshalErr, buf.String())
	}

	if record["msg"] != "generation failed" {
		t.Errorf("message = %v", record["msg"])
	}
	if _, ok := record[ErrAttrKey]; !ok {
		t.Error("error attribute missing from record")
	}
	stacktrace, ok := record[StacktraceAttrKey].(string)
	if !ok || stacktrace == "" {
		t.Errorf("stacktrace attribute missing or empty: %v", record[StacktraceAttrKey])
	}
}

// TestErrFmtHandlerPlainError tests that errors without stack information
// pass through without a stacktrace attribute
func TestErrFmtHandlerPlainError(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Error("io failed", ErrAttr(fmt.Errorf("plain failure")))

	if strings.Contains(buf.String(), StacktraceAttrKey) {
		t.Errorf("stacktrace attribute added for a stackless error: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "plain failure") {
		t.Errorf("error message missing: %s", buf.String())
	}
}

// TestErrFmtHandlerWithAttrs tests that wrapping survives WithAttrs/WithGroup
func TestErrFmtHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler).With(ComponentKey, "generate")

	logger.Error("boom", ErrAttr(cgerrors.New("still wrapped")))

	if !strings.Contains(buf.String(), `"`+ComponentKey+`":"generate"`) {
		t.Errorf("bound attribute missing: %s", buf.String())
	}
	if !strings.Contains(buf.String(), StacktraceAttrKey) {
		t.Errorf("stacktrace extraction lost after With: %s", buf.String())
	}
}

// TestToLogLevel tests the level name mapping
func TestToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		if got := ToLogLevel(name); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", name, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("ToLogLevel should panic on an unknown level name")
		}
	}()
	ToLogLevel("verbose")
}

// TestSetupLogger tests that the process-wide slog default is replaced with
// the wrapped JSON handler at the requested level
func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	SetupLogger("warn")

	ctx := context.Background()
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !slog.Default().Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
	if _, ok := slog.Default().Handler().(*ErrFmtHandler); !ok {
		t.Errorf("default handler has type %T, want *ErrFmtHandler", slog.Default().Handler())
	}
}
