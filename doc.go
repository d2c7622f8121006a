// Package chordgen prepares a symbolic-music dataset for a sequence
// generation model and samples new chord progressions from a trained
// next-token predictor.
//
// The pipeline normalizes chord progressions into a closed vocabulary,
// synthesizes additional training data via music-theoretically valid
// transformations, and at inference time autoregressively samples new
// progressions conditioned on genre, mood, key, and scale type.
//
// # Packages
//
//   - theory: chord symbol parsing and semitone transposition
//   - augment: transposition to all 12 keys and chord-quality variations
//   - corpus: the progression data model, seed corpus, and dataset files
//   - preprocessing: vocabulary fitting, encoding, and padding
//   - dataset: deterministic train/validation/test splitting
//   - generate: temperature-scaled autoregressive sampling
//
// # Quick Start
//
// Prepare a dataset:
//
//	progs := augment.TransposeToAllKeys(corpus.SeedProgressions())
//	progs = augment.WithVariations(42, progs, 0.4, 2)
//
//	pre := preprocessing.NewPreprocessor()
//	samples, err := pre.FitTransform(progs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	train, val, test, err := dataset.Split(samples, dataset.DefaultRatios, 42)
//
// Generate a progression from a trained model:
//
//	gen, err := generate.NewGenerator(model, vocab, generate.WithSeed(42))
//	chords, err := gen.Generate(generate.Request{
//	    Genre:       "jazz",
//	    Mood:        "smooth",
//	    Key:         "C",
//	    ScaleType:   "major",
//	    NumChords:   4,
//	    Temperature: 0.8,
//	})
//
// The neural sequence model itself is an external collaborator consumed
// through the core/model.SequenceModel interface; its architecture,
// training, and checkpoints live outside this module.
package chordgen
