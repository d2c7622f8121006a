package model

import "gonum.org/v1/gonum/mat"

// Conditioning carries the fixed side-information ids passed unchanged to
// the sequence model at every generation step.
type Conditioning struct {
	GenreID     int
	MoodID      int
	KeyID       int
	ScaleTypeID int
}

// SequenceModel is the external next-token predictor. Given conditioning
// scalars and a fixed-length chord-id frame, it returns one score vector per
// frame position: a matrix with len(frame) rows and chord-vocabulary-size
// columns. Scores need not be normalized; the sampler applies a softmax.
//
// The library depends only on this contract. Model internals, training, and
// checkpoint formats live outside this module.
type SequenceModel interface {
	Predict(cond Conditioning, frame []int) (mat.Matrix, error)
}
