package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/chordgen/corpus"
	"github.com/YuminosukeSato/chordgen/preprocessing"
)

func encodedSeedCorpus(t *testing.T) []preprocessing.EncodedSample {
	t.Helper()
	p := preprocessing.NewPreprocessor()
	samples, err := p.FitTransform(corpus.SeedProgressions())
	require.NoError(t, err)
	return samples
}

func TestSaveLoadSplitsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	samples := encodedSeedCorpus(t)

	train, val, test, err := Split(samples, DefaultRatios, 42)
	require.NoError(t, err)
	require.NoError(t, SaveSplits(train, val, test, dir))

	loadedTrain, loadedVal, loadedTest, err := LoadSplits(dir)
	require.NoError(t, err)

	assert.Equal(t, train, loadedTrain)
	assert.Equal(t, val, loadedVal)
	assert.Equal(t, test, loadedTest)
}

func TestLoadSplitsMissingFiles(t *testing.T) {
	_, _, _, err := LoadSplits(t.TempDir())
	assert.Error(t, err)
}
