// Package errors provides structured error handling and the warning system
// shared by every chordgen component. Malformed musical input never produces
// an error here: unknown chords, qualities, and metadata values are reported
// through the warning channel and resolved by the caller's fallback policy.
// Only structural invariant violations (bad split ratios, unfitted
// vocabularies, shape mismatches at the model boundary) surface as errors.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("chordgen-warning: %v\n", w)
	}
	// zerolog warn hook, lazily installed to avoid a circular import with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the process-wide warning handler. Preprocessing and
// generation emit warnings for every fallback they take (unknown chord
// encoded as UNK, unseen metadata value mapped to id 0); installing a handler
// lets callers count, collect, or silence them.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the zerolog warning sink (set by pkg/log to
// avoid a circular import).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When the zerolog sink is installed the warning is
// logged structurally; otherwise the plain handler receives it.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// UnknownTokenWarning is emitted when a chord token falls outside the fitted
// vocabulary and is substituted by a fallback token. It never aborts a run.
type UnknownTokenWarning struct {
	Token    string
	Fallback string
	Op       string
}

func (w *UnknownTokenWarning) Error() string {
	return fmt.Sprintf("%s: unknown token %q substituted with %q", w.Op, w.Token, w.Fallback)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UnknownTokenWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("token", w.Token).
		Str("fallback", w.Fallback).
		Str("operation", w.Op).
		Str("type", "UnknownTokenWarning")
}

// NewUnknownTokenWarning creates a new UnknownTokenWarning.
func NewUnknownTokenWarning(op, token, fallback string) *UnknownTokenWarning {
	return &UnknownTokenWarning{Op: op, Token: token, Fallback: fallback}
}

// UnknownValueWarning is emitted when a metadata value (genre, mood, key,
// scale type) was not seen when the vocabulary was fitted and falls back to
// id 0. Id 0 also belongs to the lexicographically first known value, so the
// two are indistinguishable downstream; the warning makes the collision
// observable.
type UnknownValueWarning struct {
	Axis  string
	Value string
}

func (w *UnknownValueWarning) Error() string {
	return fmt.Sprintf("unseen %s value %q mapped to id 0", w.Axis, w.Value)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UnknownValueWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("axis", w.Axis).
		Str("value", w.Value).
		Str("type", "UnknownValueWarning")
}

// NewUnknownValueWarning creates a new UnknownValueWarning.
func NewUnknownValueWarning(axis, value string) *UnknownValueWarning {
	return &UnknownValueWarning{Axis: axis, Value: value}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Encode, Transform, or Generate is called on
// a component whose vocabulary has not been fitted yet.
type NotFittedError struct {
	ComponentName string
	Method        string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("chordgen: %s: vocabulary is not fitted yet. Call Fit() before using %s()", e.ComponentName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("component", e.ComponentName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(component, method string) error {
	err := &NotFittedError{ComponentName: component, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when a sequence or distribution does not have
// the expected size, e.g. the model returned a score matrix whose column
// count differs from the chord vocabulary size.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for positions/rows, 1 for vocabulary/columns
}

func (e *DimensionError) Error() string {
	axisName := "vocabulary"
	if e.Axis == 0 {
		axisName = "positions"
	}
	return fmt.Sprintf("chordgen: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "vocabulary"
	if e.Axis == 0 {
		axisName = "positions"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a configuration parameter fails
// validation, e.g. split ratios that do not sum to 1 or a non-positive
// sampling temperature. These are fatal for the run that supplied them.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("chordgen: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is unusable for an operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("chordgen: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyCorpus is returned when a vocabulary is fitted on an empty corpus.
	ErrEmptyCorpus = New("empty corpus")

	// ErrNilModel is returned when a Generator is constructed without a model.
	ErrNilModel = New("nil sequence model")
)
