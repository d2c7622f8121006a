// Package preprocessing turns a progression corpus into fixed-length
// integer sequences for model training. A Vocabulary is fitted once per
// corpus snapshot, persisted as JSON artifacts, and treated as immutable
// shared state between offline preparation and online generation.
package preprocessing

import (
	"sort"

	"github.com/YuminosukeSato/chordgen/core/model"
	"github.com/YuminosukeSato/chordgen/corpus"
	"github.com/YuminosukeSato/chordgen/pkg/errors"
)

// Special chord tokens, inserted before all corpus-derived tokens.
const (
	PadToken   = "<PAD>"
	StartToken = "<START>"
	EndToken   = "<END>"
	UnkToken   = "<UNK>"
)

// Fixed ids of the special tokens, independent of corpus content.
const (
	PadID   = 0
	StartID = 1
	EndID   = 2
	UnkID   = 3
)

// Vocabulary is the bijective token↔id mapping for chords plus one id space
// per metadata axis. Chord ids are the four special tokens followed by the
// sorted unique corpus chords; metadata axes have no special tokens and fall
// back to id 0 for unseen values. Rebuilding from the same corpus reproduces
// identical ids.
type Vocabulary struct {
	MaxSequenceLength int

	ChordToID map[string]int
	IDToChord map[int]string

	GenreToID     map[string]int
	MoodToID      map[string]int
	KeyToID       map[string]int
	ScaleTypeToID map[string]int
}

// buildVocabulary derives a vocabulary from the corpus.
func buildVocabulary(progressions []corpus.Progression, maxSequenceLength int) *Vocabulary {
	chordSet := make(map[string]struct{})
	genreSet := make(map[string]struct{})
	moodSet := make(map[string]struct{})
	keySet := make(map[string]struct{})
	scaleSet := make(map[string]struct{})

	for _, p := range progressions {
		for _, c := range p.Chords {
			chordSet[c] = struct{}{}
		}
		genreSet[p.Genre] = struct{}{}
		moodSet[p.Mood] = struct{}{}
		keySet[p.Key] = struct{}{}
		scaleSet[p.ScaleType] = struct{}{}
	}

	chords := []string{PadToken, StartToken, EndToken, UnkToken}
	chords = append(chords, sortedKeys(chordSet)...)

	v := &Vocabulary{
		MaxSequenceLength: maxSequenceLength,
		ChordToID:         make(map[string]int, len(chords)),
		IDToChord:         make(map[int]string, len(chords)),
		GenreToID:         indexOf(genreSet),
		MoodToID:          indexOf(moodSet),
		KeyToID:           indexOf(keySet),
		ScaleTypeToID:     indexOf(scaleSet),
	}
	for id, chord := range chords {
		v.ChordToID[chord] = id
		v.IDToChord[id] = chord
	}
	return v
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(set map[string]struct{}) map[string]int {
	ids := make(map[string]int, len(set))
	for i, k := range sortedKeys(set) {
		ids[k] = i
	}
	return ids
}

// Size returns the chord vocabulary size including special tokens.
func (v *Vocabulary) Size() int {
	return len(v.ChordToID)
}

// EncodeChord returns the id for a chord token, or UnkID when the token is
// outside the vocabulary. Unknown tokens emit an UnknownTokenWarning.
func (v *Vocabulary) EncodeChord(token string) int {
	if id, ok := v.ChordToID[token]; ok {
		return id
	}
	errors.Warn(errors.NewUnknownTokenWarning("EncodeChord", token, UnkToken))
	return UnkID
}

// DecodeChord returns the token for an id, or UnkToken when no inverse
// mapping exists. Internally produced ids always have one; the fallback
// guards externally supplied ids such as model output.
func (v *Vocabulary) DecodeChord(id int) string {
	if token, ok := v.IDToChord[id]; ok {
		return token
	}
	return UnkToken
}

// EncodeProgression substitutes each chord with its id, UnkID for unknowns.
func (v *Vocabulary) EncodeProgression(chords []string) []int {
	ids := make([]int, len(chords))
	for i, c := range chords {
		ids[i] = v.EncodeChord(c)
	}
	return ids
}

// DecodeProgression is the inverse chord lookup over a whole sequence.
func (v *Vocabulary) DecodeProgression(ids []int) []string {
	chords := make([]string, len(ids))
	for i, id := range ids {
		chords[i] = v.DecodeChord(id)
	}
	return chords
}

// PadSequence truncates or right-pads ids to the vocabulary's fixed frame
// length. Truncation keeps the prefix; padding appends PadID.
func (v *Vocabulary) PadSequence(ids []int) []int {
	return v.PadSequenceTo(ids, v.MaxSequenceLength)
}

// PadSequenceTo is PadSequence with an explicit target length.
func (v *Vocabulary) PadSequenceTo(ids []int, length int) []int {
	switch {
	case len(ids) > length:
		return append([]int(nil), ids[:length]...)
	case len(ids) < length:
		out := make([]int, length)
		copy(out, ids)
		for i := len(ids); i < length; i++ {
			out[i] = PadID
		}
		return out
	default:
		return append([]int(nil), ids...)
	}
}

// GenreID returns the id for a genre name, falling back to 0 for unseen
// values. The same discipline applies to MoodID, KeyID, and ScaleTypeID:
// id 0 is shared with the lexicographically first known value, so unseen
// values additionally emit an UnknownValueWarning.
func (v *Vocabulary) GenreID(name string) int {
	return metadataID(v.GenreToID, "genre", name)
}

// MoodID returns the id for a mood name, 0 for unseen values.
func (v *Vocabulary) MoodID(name string) int {
	return metadataID(v.MoodToID, "mood", name)
}

// KeyID returns the id for a key name, 0 for unseen values.
func (v *Vocabulary) KeyID(name string) int {
	return metadataID(v.KeyToID, "key", name)
}

// ScaleTypeID returns the id for a scale type, 0 for unseen values.
func (v *Vocabulary) ScaleTypeID(name string) int {
	return metadataID(v.ScaleTypeToID, "scale_type", name)
}

func metadataID(ids map[string]int, axis, name string) int {
	if id, ok := ids[name]; ok {
		return id
	}
	errors.Warn(errors.NewUnknownValueWarning(axis, name))
	return 0
}

// Conditioning resolves the four metadata names to the conditioning ids
// passed to the sequence model.
func (v *Vocabulary) Conditioning(genre, mood, key, scaleType string) model.Conditioning {
	return model.Conditioning{
		GenreID:     v.GenreID(genre),
		MoodID:      v.MoodID(mood),
		KeyID:       v.KeyID(key),
		ScaleTypeID: v.ScaleTypeID(scaleType),
	}
}
