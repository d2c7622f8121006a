package generate

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/chordgen/pkg/errors"
)

// sampleWithTemperature draws one index from the categorical distribution
// obtained by dividing the scores by temperature and applying a
// numerically-stable softmax (max subtracted before exponentiation).
// Temperatures below 1 sharpen the distribution toward the argmax; above 1
// they flatten it toward uniform.
func sampleWithTemperature(rng *rand.Rand, scores []float64, temperature float64) (int, error) {
	if len(scores) == 0 {
		return 0, errors.NewValueError("sampleWithTemperature", "empty score vector")
	}
	if temperature <= 0 {
		return 0, errors.NewValidationError("temperature", "must be > 0", temperature)
	}

	scaled := make([]float64, len(scores))
	for i, s := range scores {
		scaled[i] = s / temperature
	}

	max := floats.Max(scaled)
	for i := range scaled {
		scaled[i] = math.Exp(scaled[i] - max)
	}

	sum := floats.Sum(scaled)
	if math.IsNaN(sum) || sum <= 0 {
		return 0, errors.NewValueError("sampleWithTemperature", "degenerate score vector")
	}

	u := rng.Float64() * sum
	var cum float64
	for i, p := range scaled {
		cum += p
		if u < cum {
			return i, nil
		}
	}
	// Floating rounding can leave u marginally above the final cumulative
	// sum; the draw then belongs to the last class.
	return len(scaled) - 1, nil
}
