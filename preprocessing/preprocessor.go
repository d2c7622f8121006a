package preprocessing

import (
	"github.com/YuminosukeSato/chordgen/core/model"
	"github.com/YuminosukeSato/chordgen/corpus"
	"github.com/YuminosukeSato/chordgen/pkg/errors"
	"github.com/YuminosukeSato/chordgen/pkg/log"
)

// DefaultMaxSequenceLength is the fixed frame length sequences are padded
// or truncated to unless configured otherwise.
const DefaultMaxSequenceLength = 12

// EncodedSample is the training record derived from one progression: the
// padded integer sequence plus scalar metadata ids, alongside the original
// human-readable fields for traceability. Samples are derived once and
// never mutated.
type EncodedSample struct {
	ID            int      `json:"id"`
	Encoded       []int    `json:"progression_encoded"`
	Chords        []string `json:"progression_original"`
	Length        int      `json:"progression_length"`
	RomanNumerals []string `json:"roman_numerals,omitempty"`

	GenreID     int    `json:"genre_encoded"`
	Genre       string `json:"genre"`
	MoodID      int    `json:"mood_encoded"`
	Mood        string `json:"mood"`
	KeyID       int    `json:"key_encoded"`
	Key         string `json:"key"`
	ScaleTypeID int    `json:"scale_type_encoded"`
	ScaleType   string `json:"scale_type"`

	SongName string `json:"song_name,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Preprocessor fits a Vocabulary on a corpus and encodes progressions into
// fixed-length samples. It follows the fit-once discipline: Transform before
// Fit returns a NotFittedError.
type Preprocessor struct {
	model.BaseEstimator

	maxSequenceLength int
	vocab             *Vocabulary
	logger            log.Logger
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithMaxSequenceLength sets the fixed frame length.
func WithMaxSequenceLength(n int) Option {
	return func(p *Preprocessor) {
		p.maxSequenceLength = n
	}
}

// WithLogger replaces the component logger.
func WithLogger(logger log.Logger) Option {
	return func(p *Preprocessor) {
		p.logger = logger
	}
}

// NewPreprocessor creates an unfitted Preprocessor.
func NewPreprocessor(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		maxSequenceLength: DefaultMaxSequenceLength,
		logger:            log.GetLoggerWithName("preprocessing"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fit derives the chord and metadata vocabularies from the corpus. Fitting
// on an empty corpus is a structural error.
func (p *Preprocessor) Fit(progressions []corpus.Progression) error {
	if len(progressions) == 0 {
		return errors.WithStack(errors.ErrEmptyCorpus)
	}

	p.vocab = buildVocabulary(progressions, p.maxSequenceLength)
	p.SetFitted()

	p.logger.Info("vocabularies fitted",
		log.OperationKey, "fit",
		log.SamplesKey, len(progressions),
		log.VocabSizeKey, p.vocab.Size(),
		log.GenreVocabKey, len(p.vocab.GenreToID),
		log.MoodVocabKey, len(p.vocab.MoodToID),
		log.KeyVocabKey, len(p.vocab.KeyToID),
		log.ScaleVocabKey, len(p.vocab.ScaleTypeToID),
		log.SequenceLengthKey, p.maxSequenceLength,
	)
	return nil
}

// Transform encodes every progression into an EncodedSample. Unknown chords
// become UnkID; unseen metadata values become id 0. Transform never fails on
// musical input, only on an unfitted vocabulary.
func (p *Preprocessor) Transform(progressions []corpus.Progression) ([]EncodedSample, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Preprocessor", "Transform")
	}

	samples := make([]EncodedSample, len(progressions))
	for i, prog := range progressions {
		encoded := p.vocab.EncodeProgression(prog.Chords)
		samples[i] = EncodedSample{
			ID:            prog.ID,
			Encoded:       p.vocab.PadSequence(encoded),
			Chords:        prog.Chords,
			Length:        len(prog.Chords),
			RomanNumerals: prog.RomanNumerals,
			GenreID:       p.vocab.GenreID(prog.Genre),
			Genre:         prog.Genre,
			MoodID:        p.vocab.MoodID(prog.Mood),
			Mood:          prog.Mood,
			KeyID:         p.vocab.KeyID(prog.Key),
			Key:           prog.Key,
			ScaleTypeID:   p.vocab.ScaleTypeID(prog.ScaleType),
			ScaleType:     prog.ScaleType,
			SongName:      prog.SongName,
			Source:        prog.Source,
		}
	}

	p.logger.Info("corpus encoded",
		log.OperationKey, "encode",
		log.SamplesKey, len(samples),
	)
	return samples, nil
}

// FitTransform fits the vocabularies and encodes the corpus in one call.
func (p *Preprocessor) FitTransform(progressions []corpus.Progression) ([]EncodedSample, error) {
	if err := p.Fit(progressions); err != nil {
		return nil, err
	}
	return p.Transform(progressions)
}

// Vocabulary returns the fitted vocabulary.
func (p *Preprocessor) Vocabulary() (*Vocabulary, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Preprocessor", "Vocabulary")
	}
	return p.vocab, nil
}
