package errors

import (
	"strings"
	"testing"
)

func TestWarningHandlerCapture(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	Warn(NewUnknownTokenWarning("EncodeChord", "H#", "<UNK>"))
	Warn(NewUnknownValueWarning("genre", "vaporwave"))

	if len(captured) != 2 {
		t.Fatalf("captured %d warnings, want 2", len(captured))
	}

	var tokenWarning *UnknownTokenWarning
	if !As(captured[0], &tokenWarning) {
		t.Fatalf("first warning has type %T, want *UnknownTokenWarning", captured[0])
	}
	if tokenWarning.Token != "H#" || tokenWarning.Fallback != "<UNK>" {
		t.Errorf("unexpected warning fields: %+v", tokenWarning)
	}

	var valueWarning *UnknownValueWarning
	if !As(captured[1], &valueWarning) {
		t.Fatalf("second warning has type %T, want *UnknownValueWarning", captured[1])
	}
	if valueWarning.Axis != "genre" || valueWarning.Value != "vaporwave" {
		t.Errorf("unexpected warning fields: %+v", valueWarning)
	}
}

func TestZerologWarnFuncTakesPrecedence(t *testing.T) {
	handlerCalls := 0
	SetWarningHandler(func(error) { handlerCalls++ })
	defer SetWarningHandler(nil)

	sinkCalls := 0
	SetZerologWarnFunc(func(error) { sinkCalls++ })
	defer SetZerologWarnFunc(nil)

	Warn(NewUnknownValueWarning("mood", "wistful"))

	if sinkCalls != 1 {
		t.Errorf("sink calls = %d, want 1", sinkCalls)
	}
	if handlerCalls != 0 {
		t.Errorf("handler calls = %d, want 0 when the sink is installed", handlerCalls)
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Preprocessor", "Transform")

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatal("As failed to unwrap NotFittedError")
	}
	if notFitted.ComponentName != "Preprocessor" {
		t.Errorf("component = %q", notFitted.ComponentName)
	}
	if !strings.Contains(err.Error(), "Fit()") {
		t.Errorf("message should point at Fit(): %q", err.Error())
	}
}

func TestDimensionErrorAxisName(t *testing.T) {
	err := NewDimensionError("Generate", 40, 2, 1)

	var dim *DimensionError
	if !As(err, &dim) {
		t.Fatal("As failed to unwrap DimensionError")
	}
	if !strings.Contains(err.Error(), "vocabulary") {
		t.Errorf("axis 1 should name the vocabulary axis: %q", err.Error())
	}

	rowErr := NewDimensionError("Generate", 12, 5, 0)
	if !strings.Contains(rowErr.Error(), "positions") {
		t.Errorf("axis 0 should name the positions axis: %q", rowErr.Error())
	}
}

func TestValidationErrorFields(t *testing.T) {
	err := NewValidationError("temperature", "must be > 0", -1.0)

	var validation *ValidationError
	if !As(err, &validation) {
		t.Fatal("As failed to unwrap ValidationError")
	}
	if validation.ParamName != "temperature" {
		t.Errorf("param = %q", validation.ParamName)
	}
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrEmptyCorpus, "fitting vocabulary")
	if !Is(err, ErrEmptyCorpus) {
		t.Error("wrapped sentinel lost its identity")
	}
	if !strings.Contains(err.Error(), "fitting vocabulary") {
		t.Errorf("wrap message missing: %q", err.Error())
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "boom.op")
		panic("exploded")
	}

	err := fn()
	if err == nil {
		t.Fatal("Recover did not convert the panic into an error")
	}
	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("error has type %T, want *PanicError", err)
	}
	if !strings.Contains(err.Error(), "boom.op") {
		t.Errorf("operation missing from message: %q", err.Error())
	}
}
