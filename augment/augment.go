package augment

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/chordgen/core/parallel"
	"github.com/YuminosukeSato/chordgen/corpus"
	"github.com/YuminosukeSato/chordgen/pkg/log"
	"github.com/YuminosukeSato/chordgen/theory"
)

// parallelThreshold is the corpus size below which fan-out runs
// sequentially.
const parallelThreshold = 64

// TransposeToAllKeys replaces each progression with its 12 transpositions,
// one per chromatic key. The semitone-0 copy is the identity-preserving
// marker for the source progression (SourceOriginal); the other 11 carry
// SourceTransposed with lineage to the source key. IDs are reassigned
// sequentially from 1 over the result.
//
// The fan-out is an independent map over progressions and runs in parallel
// for large corpora.
func TransposeToAllKeys(progressions []corpus.Progression) []corpus.Progression {
	logger := log.GetLoggerWithName("augment")

	out := make([]corpus.Progression, len(progressions)*12)
	parallel.ParallelizeWithThreshold(len(progressions), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			base := progressions[i]
			for semitones := 0; semitones < 12; semitones++ {
				p := base.Clone()
				p.Chords = theory.TransposeProgression(base.Chords, semitones)
				p.Key = theory.TransposeKey(base.Key, semitones)
				if semitones == 0 {
					p.Source = corpus.SourceOriginal
				} else {
					p.Source = corpus.SourceTransposed
					p.TransposedSemitones = semitones
					p.OriginalKey = base.Key
				}
				out[i*12+semitones] = p
			}
		}
	})

	for i := range out {
		out[i].ID = i + 1
	}

	logger.Info("transposition fan-out complete",
		log.OperationKey, "transpose",
		log.SamplesKey, len(out),
		"base_progressions", len(progressions),
	)
	return out
}

// WithVariations appends chord-substitution variants to the corpus. Each
// source progression contributes at most maxPerSource variants, produced by
// ProgressionVariations with the given per-chord probability. Variants carry
// SourceVariation and a lineage pointer to their source ID.
//
// Randomness is derived per source progression from the seed, so results
// are identical across runs and independent of the parallel schedule.
func WithVariations(seed uint64, progressions []corpus.Progression, prob float64, maxPerSource int) []corpus.Progression {
	logger := log.GetLoggerWithName("augment")

	perSource := make([][][]string, len(progressions))
	parallel.ParallelizeWithThreshold(len(progressions), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			variations := ProgressionVariations(rng, progressions[i].Chords, prob)
			if len(variations) > maxPerSource {
				variations = variations[:maxPerSource]
			}
			perSource[i] = variations
		}
	})

	out := append([]corpus.Progression(nil), progressions...)
	nextID := len(progressions) + 1
	added := 0
	for i, variations := range perSource {
		for _, chords := range variations {
			p := progressions[i].Clone()
			p.Chords = chords
			p.ID = nextID
			p.Source = corpus.SourceVariation
			p.OriginalID = progressions[i].ID
			out = append(out, p)
			nextID++
			added++
		}
	}

	logger.Info("variation fan-out complete",
		log.OperationKey, "variate",
		log.SeedKey, seed,
		log.SamplesKey, len(out),
		"variations_added", added,
	)
	return out
}
