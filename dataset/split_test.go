package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/chordgen/pkg/errors"
)

func TestSplitSizes(t *testing.T) {
	samples := make([]int, 1000)
	for i := range samples {
		samples[i] = i
	}

	train, val, test, err := Split(samples, DefaultRatios, 42)
	require.NoError(t, err)

	assert.Len(t, train, 800)
	assert.Len(t, val, 150)
	assert.Len(t, test, 50)
}

func TestSplitDisjointExhaustive(t *testing.T) {
	samples := make([]int, 333)
	for i := range samples {
		samples[i] = i
	}

	train, val, test, err := Split(samples, DefaultRatios, 7)
	require.NoError(t, err)
	assert.Equal(t, len(samples), len(train)+len(val)+len(test))

	seen := make(map[int]int)
	for _, parts := range [][]int{train, val, test} {
		for _, s := range parts {
			seen[s]++
		}
	}
	require.Len(t, seen, len(samples), "every sample must land in exactly one partition")
	for s, n := range seen {
		assert.Equal(t, 1, n, "sample %d appears %d times", s, n)
	}
}

func TestSplitDeterministic(t *testing.T) {
	samples := make([]int, 200)
	for i := range samples {
		samples[i] = i
	}

	t1, v1, s1, err := Split(samples, DefaultRatios, 99)
	require.NoError(t, err)
	t2, v2, s2, err := Split(samples, DefaultRatios, 99)
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, s1, s2)

	t3, _, _, err := Split(samples, DefaultRatios, 100)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t3, "different seeds should shuffle differently")
}

func TestSplitPreservesInput(t *testing.T) {
	samples := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	original := append([]int(nil), samples...)

	_, _, _, err := Split(samples, DefaultRatios, 1)
	require.NoError(t, err)
	assert.Equal(t, original, samples, "Split must shuffle a copy, not the input")
}

func TestSplitInvalidRatios(t *testing.T) {
	samples := []int{1, 2, 3}

	_, _, _, err := Split(samples, Ratios{Train: 0.5, Val: 0.5, Test: 0.5}, 1)
	require.Error(t, err)
	var validation *errors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestRatiosValidateTolerance(t *testing.T) {
	// Floating error well inside the tolerance is accepted.
	assert.NoError(t, Ratios{Train: 0.7, Val: 0.2, Test: 0.1}.Validate())
	assert.NoError(t, Ratios{Train: 0.8, Val: 0.15, Test: 0.05 + 1e-9}.Validate())
	assert.Error(t, Ratios{Train: 0.8, Val: 0.15, Test: 0.06}.Validate())
}

func TestSplitEmpty(t *testing.T) {
	train, val, test, err := Split([]int(nil), DefaultRatios, 42)
	require.NoError(t, err)
	assert.Empty(t, train)
	assert.Empty(t, val)
	assert.Empty(t, test)
}
