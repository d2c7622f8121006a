package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/chordgen/corpus"
)

func fitVocabulary(t *testing.T) *Vocabulary {
	t.Helper()
	return buildVocabulary(corpus.SeedProgressions(), DefaultMaxSequenceLength)
}

func TestVocabularySpecialTokens(t *testing.T) {
	v := fitVocabulary(t)

	assert.Equal(t, PadID, v.ChordToID[PadToken])
	assert.Equal(t, StartID, v.ChordToID[StartToken])
	assert.Equal(t, EndID, v.ChordToID[EndToken])
	assert.Equal(t, UnkID, v.ChordToID[UnkToken])

	assert.Equal(t, PadToken, v.IDToChord[0])
	assert.Equal(t, StartToken, v.IDToChord[1])
	assert.Equal(t, EndToken, v.IDToChord[2])
	assert.Equal(t, UnkToken, v.IDToChord[3])
}

func TestVocabularyBijective(t *testing.T) {
	v := fitVocabulary(t)

	assert.Len(t, v.IDToChord, v.Size())
	for chord, id := range v.ChordToID {
		assert.Equal(t, chord, v.IDToChord[id])
	}

	// Corpus tokens start after the special block and are sorted.
	prev := ""
	for id := 4; id < v.Size(); id++ {
		chord := v.IDToChord[id]
		require.NotEmpty(t, chord)
		if id > 4 {
			assert.Less(t, prev, chord, "corpus tokens must be sorted")
		}
		prev = chord
	}
}

func TestVocabularyDeterministicRebuild(t *testing.T) {
	a := fitVocabulary(t)
	b := fitVocabulary(t)

	assert.Equal(t, a.ChordToID, b.ChordToID)
	assert.Equal(t, a.GenreToID, b.GenreToID)
	assert.Equal(t, a.MoodToID, b.MoodToID)
	assert.Equal(t, a.KeyToID, b.KeyToID)
	assert.Equal(t, a.ScaleTypeToID, b.ScaleTypeToID)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := fitVocabulary(t)

	chords := corpus.SeedProgressions()[0].Chords
	ids := v.EncodeProgression(chords)
	assert.Equal(t, chords, v.DecodeProgression(ids))
}

func TestEncodeUnknownChord(t *testing.T) {
	v := fitVocabulary(t)

	assert.Equal(t, UnkID, v.EncodeChord("H#quux"))
	// Lossy on purpose: the unknown collapses to the UNK token.
	assert.Equal(t, []string{UnkToken, "C"}, v.DecodeProgression(v.EncodeProgression([]string{"H#quux", "C"})))
}

func TestDecodeUnknownID(t *testing.T) {
	v := fitVocabulary(t)
	assert.Equal(t, UnkToken, v.DecodeChord(v.Size()+100))
	assert.Equal(t, UnkToken, v.DecodeChord(-1))
}

func TestPadSequence(t *testing.T) {
	v := fitVocabulary(t)

	short := []int{5, 6}
	padded := v.PadSequence(short)
	require.Len(t, padded, DefaultMaxSequenceLength)
	assert.Equal(t, []int{5, 6}, padded[:2])
	for _, id := range padded[2:] {
		assert.Equal(t, PadID, id)
	}

	long := make([]int, DefaultMaxSequenceLength+5)
	for i := range long {
		long[i] = i + 4
	}
	truncated := v.PadSequence(long)
	require.Len(t, truncated, DefaultMaxSequenceLength)
	assert.Equal(t, long[:DefaultMaxSequenceLength], truncated)

	exact := make([]int, DefaultMaxSequenceLength)
	assert.Equal(t, exact, v.PadSequence(exact))
}

func TestPadSequenceCopies(t *testing.T) {
	v := fitVocabulary(t)

	ids := []int{5, 6, 7}
	out := v.PadSequence(ids)
	out[0] = 99
	assert.Equal(t, 5, ids[0], "PadSequence must not alias its input")
}

func TestMetadataFallback(t *testing.T) {
	v := fitVocabulary(t)

	assert.Equal(t, 0, v.GenreID("no-such-genre"))
	assert.Equal(t, 0, v.MoodID("no-such-mood"))
	assert.Equal(t, 0, v.KeyID("H"))
	assert.Equal(t, 0, v.ScaleTypeID("chromatic"))
}

func TestConditioning(t *testing.T) {
	v := fitVocabulary(t)
	p := corpus.SeedProgressions()[0]

	cond := v.Conditioning(p.Genre, p.Mood, p.Key, p.ScaleType)
	assert.Equal(t, v.GenreToID[p.Genre], cond.GenreID)
	assert.Equal(t, v.MoodToID[p.Mood], cond.MoodID)
	assert.Equal(t, v.KeyToID[p.Key], cond.KeyID)
	assert.Equal(t, v.ScaleTypeToID[p.ScaleType], cond.ScaleTypeID)
}
