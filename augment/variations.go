// Package augment synthesizes additional training progressions via
// music-theoretically valid transformations: transposition to all 12 keys
// and chord-quality substitution. Every sampling call takes an explicit
// random generator (or seed), so augmentation runs are deterministic by
// construction.
package augment

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/chordgen/corpus"
	"github.com/YuminosukeSato/chordgen/theory"
)

// chordSubstitutions maps a base quality to the substitute qualities that
// keep the chord's harmonic function intact.
var chordSubstitutions = map[string][]string{
	// Major triads
	"": {"maj7", "maj9", "6", "add9", "sus2", "sus4"},

	// Minor triads
	"m": {"m7", "m9", "m6", "madd9", "msus2", "msus4"},

	// Dominant 7th
	"7": {"9", "13", "7sus4", "7b9", "7#9"},

	// Major 7th
	"maj7": {"maj9", "maj13", "maj7#11"},

	// Minor 7th
	"m7": {"m9", "m11", "m13"},

	// Diminished
	"dim": {"dim7", "m7b5"},

	// Augmented
	"aug": {"7#5", "maj7#5"},
}

// ChordVariations returns the chord followed by up to num substitute
// spellings drawn without replacement from the substitution table, each
// recombined with the original root. Chords whose quality has no table
// entry (and unparseable chords) return only the original.
func ChordVariations(rng *rand.Rand, chord string, num int) []string {
	c := theory.ParseChord(chord)
	if !c.Parsed() {
		return []string{chord}
	}

	variations := []string{chord}

	candidates, ok := chordSubstitutions[c.Quality]
	if !ok {
		return variations
	}

	k := num
	if k > len(candidates) {
		k = len(candidates)
	}
	for _, idx := range rng.Perm(len(candidates))[:k] {
		variations = append(variations, c.Root+candidates[idx])
	}
	return variations
}

// ProgressionVariations produces up to three candidate variants of a
// progression:
//
//  1. every chord substituted independently with probability prob
//  2. only the first chord substituted
//  3. only the last chord substituted
//
// Each variant is kept only if it differs from the input and from variants
// already produced. The bounded scheme caps variation volume per source
// progression instead of enumerating the substitution space.
func ProgressionVariations(rng *rand.Rand, progression []string, prob float64) [][]string {
	var variations [][]string

	// Strategy 1: independent per-chord substitution.
	varied := make([]string, len(progression))
	for i, chord := range progression {
		varied[i] = chord
		if rng.Float64() < prob {
			if vars := ChordVariations(rng, chord, 1); len(vars) > 1 {
				varied[i] = vars[1]
			}
		}
	}
	if !corpus.EqualChords(varied, progression) {
		variations = append(variations, varied)
	}

	// Strategy 2: first chord only.
	if len(progression) > 0 {
		if vars := ChordVariations(rng, progression[0], 1); len(vars) > 1 {
			v := append([]string{vars[1]}, progression[1:]...)
			variations = appendUnique(variations, v, progression)
		}
	}

	// Strategy 3: last chord only.
	if len(progression) > 0 {
		if vars := ChordVariations(rng, progression[len(progression)-1], 1); len(vars) > 1 {
			v := append(append([]string(nil), progression[:len(progression)-1]...), vars[1])
			variations = appendUnique(variations, v, progression)
		}
	}

	return variations
}

func appendUnique(variations [][]string, candidate, original []string) [][]string {
	if corpus.EqualChords(candidate, original) {
		return variations
	}
	for _, v := range variations {
		if corpus.EqualChords(candidate, v) {
			return variations
		}
	}
	return append(variations, candidate)
}
