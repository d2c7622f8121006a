// Package dataset partitions encoded samples into train/validation/test
// sets and persists them. Splitting is deterministic for a fixed seed so
// evaluation runs are reproducible.
package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/chordgen/pkg/errors"
	"github.com/YuminosukeSato/chordgen/pkg/log"
)

// ratioTolerance is the floating tolerance for the ratio-sum precondition.
const ratioTolerance = 1e-6

// Ratios holds the relative sizes of the three partitions. They must sum
// to 1 within ratioTolerance.
type Ratios struct {
	Train float64
	Val   float64
	Test  float64
}

// DefaultRatios is the standard 80/15/5 split.
var DefaultRatios = Ratios{Train: 0.8, Val: 0.15, Test: 0.05}

// Validate checks the ratio-sum precondition. Violation is a fatal
// configuration error, not recoverable.
func (r Ratios) Validate() error {
	sum := r.Train + r.Val + r.Test
	if math.Abs(sum-1.0) >= ratioTolerance {
		return errors.NewValidationError("ratios", "train+val+test must sum to 1.0", sum)
	}
	return nil
}

// Split deterministically shuffles a copy of samples with the given seed and
// cuts it at floor(N*train) and floor(N*train)+floor(N*val); the remainder
// is the test set. The three partitions are disjoint and exhaustive, and the
// input order is left untouched.
func Split[T any](samples []T, r Ratios, seed uint64) (train, val, test []T, err error) {
	if err := r.Validate(); err != nil {
		return nil, nil, nil, err
	}

	shuffled := append([]T(nil), samples...)
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	nTrain := int(float64(n) * r.Train)
	nVal := int(float64(n) * r.Val)

	train = shuffled[:nTrain]
	val = shuffled[nTrain : nTrain+nVal]
	test = shuffled[nTrain+nVal:]

	log.GetLoggerWithName("dataset").Info("dataset split",
		log.OperationKey, "split",
		log.SeedKey, seed,
		log.TrainSizeKey, len(train),
		log.ValSizeKey, len(val),
		log.TestSizeKey, len(test),
	)
	return train, val, test, nil
}
