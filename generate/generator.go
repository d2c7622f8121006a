// Package generate drives an external next-token predictor step by step to
// assemble new chord progressions. The loop is inherently sequential within
// one progression; independent generation requests may run concurrently,
// each with its own Generator.
package generate

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/chordgen/core/model"
	"github.com/YuminosukeSato/chordgen/pkg/errors"
	"github.com/YuminosukeSato/chordgen/pkg/log"
	"github.com/YuminosukeSato/chordgen/preprocessing"
)

// Stop reasons reported in the generation log.
const (
	stopReasonToken  = "stop_token"
	stopReasonLength = "length_bound"
)

// Request describes one generation run. Metadata names unseen at fit time
// silently map to id 0, consistent with encode-time fallback handling.
type Request struct {
	Genre       string
	Mood        string
	Key         string
	ScaleType   string
	NumChords   int
	Temperature float64

	// SeedChords optionally primes the sequence; when empty, generation
	// starts from the START token.
	SeedChords []string
}

// Generator samples progressions from a trained sequence model using a
// fitted vocabulary. The vocabulary is shared read-only state; the random
// generator is the only mutable dependency.
type Generator struct {
	model  model.SequenceModel
	vocab  *preprocessing.Vocabulary
	rng    *rand.Rand
	logger log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects the random generator used for sampling.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSeed derives the sampling generator from a fixed seed, making runs
// reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithLogger replaces the component logger.
func WithLogger(logger log.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator over the given model and vocabulary.
func NewGenerator(m model.SequenceModel, vocab *preprocessing.Vocabulary, opts ...Option) (*Generator, error) {
	if m == nil {
		return nil, errors.WithStack(errors.ErrNilModel)
	}
	if vocab == nil {
		return nil, errors.NewValueError("NewGenerator", "nil vocabulary")
	}

	g := &Generator{
		model:  m,
		vocab:  vocab,
		logger: log.GetLoggerWithName("generate"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return g, nil
}

// Generate runs the autoregressive sampling loop and returns the assembled
// progression. Generation halts when the sampled id is PAD or END (without
// appending it) or once NumChords chords have been produced; both are valid
// outcomes, and the result may be empty when the first draw is a stop
// token. Errors arise only from configuration (non-positive temperature or
// chord count) or from the model itself.
func (g *Generator) Generate(req Request) (chords []string, err error) {
	defer errors.Recover(&err, "Generator.Generate")

	if req.NumChords <= 0 {
		return nil, errors.NewValidationError("num_chords", "must be > 0", req.NumChords)
	}
	if req.Temperature <= 0 {
		return nil, errors.NewValidationError("temperature", "must be > 0", req.Temperature)
	}

	start := time.Now()
	cond := g.vocab.Conditioning(req.Genre, req.Mood, req.Key, req.ScaleType)

	sequence := []int{preprocessing.StartID}
	if len(req.SeedChords) > 0 {
		sequence = g.vocab.EncodeProgression(req.SeedChords)
	}

	generated := make([]string, 0, req.NumChords)
	stopReason := stopReasonLength

	for len(generated) < req.NumChords {
		frame := g.vocab.PadSequence(sequence)

		scores, err := g.model.Predict(cond, frame)
		if err != nil {
			return nil, errors.Wrap(err, "sequence model prediction failed")
		}
		rows, cols := scores.Dims()
		if cols != g.vocab.Size() {
			return nil, errors.NewDimensionError("Generate", g.vocab.Size(), cols, 1)
		}

		// Read the distribution at the current position, clamped to the
		// frame boundary once the sequence fills the frame.
		pos := len(sequence) - 1
		if pos >= rows {
			pos = rows - 1
		}
		distribution := mat.Row(nil, pos, scores)

		id, err := sampleWithTemperature(g.rng, distribution, req.Temperature)
		if err != nil {
			return nil, err
		}

		if id == preprocessing.PadID || id == preprocessing.EndID {
			stopReason = stopReasonToken
			break
		}

		sequence = append(sequence, id)
		generated = append(generated, g.vocab.DecodeChord(id))
	}

	g.logger.Info("progression generated",
		log.OperationKey, "generate",
		log.NumChordsKey, len(generated),
		log.TemperatureKey, req.Temperature,
		log.StopReasonKey, stopReason,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return generated, nil
}
