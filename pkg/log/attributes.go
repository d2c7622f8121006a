// Package log defines standard attribute keys for pipeline operations.
//
// Using these keys consistently across packages keeps the JSON log stream
// filterable: every augmentation, preprocessing, split, and generation step
// tags its records with the same key names.
package log

// Component and operation context.
const (
	// ComponentKey identifies the package performing the operation.
	// Examples: "theory", "augment", "preprocessing", "dataset", "generate"
	ComponentKey = "component"

	// OperationKey specifies the pipeline operation being performed.
	// Standard values: "fit", "encode", "decode", "transpose", "variate",
	// "split", "generate"
	OperationKey = "pipeline.operation"

	// SourceKey records the provenance of a progression.
	// Standard values: "original", "transposed", "variation"
	SourceKey = "progression.source"
)

// Data shape and vocabulary characteristics.
const (
	// SamplesKey is the number of progressions or encoded samples handled.
	SamplesKey = "data.samples"

	// SequenceLengthKey is the fixed frame length sequences are padded to.
	SequenceLengthKey = "data.sequence_length"

	// VocabSizeKey is the chord vocabulary size including special tokens.
	VocabSizeKey = "vocab.chords"

	// GenreVocabKey, MoodVocabKey, KeyVocabKey, ScaleVocabKey are the
	// per-axis metadata vocabulary sizes.
	GenreVocabKey = "vocab.genres"
	MoodVocabKey  = "vocab.moods"
	KeyVocabKey   = "vocab.keys"
	ScaleVocabKey = "vocab.scale_types"
)

// Split and generation parameters.
const (
	// TrainSizeKey, ValSizeKey, TestSizeKey are the partition sizes.
	TrainSizeKey = "split.train"
	ValSizeKey   = "split.val"
	TestSizeKey  = "split.test"

	// SeedKey is the random seed threaded through a sampling operation.
	SeedKey = "rand.seed"

	// TemperatureKey is the sampling temperature of a generation request.
	TemperatureKey = "generate.temperature"

	// NumChordsKey is the requested progression length.
	NumChordsKey = "generate.num_chords"

	// StopReasonKey records how a generation run terminated.
	// Standard values: "stop_token", "length_bound"
	StopReasonKey = "generate.stop_reason"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
