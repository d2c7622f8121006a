package model

// EstimatorState tracks whether a fit-once component has been fitted.
type EstimatorState int

const (
	// NotFitted means the component has not seen a corpus yet.
	NotFitted EstimatorState = iota
	// Fitted means the component holds corpus-derived state.
	Fitted
)

// BaseEstimator is embedded by fit-once components such as the vocabulary
// preprocessor. Fitted state is set exactly once per corpus snapshot; the
// component is treated as immutable afterwards.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the component has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the component as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the component to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
