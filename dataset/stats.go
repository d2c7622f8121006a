package dataset

import (
	"sort"

	"github.com/YuminosukeSato/chordgen/pkg/log"
	"github.com/YuminosukeSato/chordgen/preprocessing"
)

// Distribution counts occurrences of a metadata value across samples.
type Distribution map[string]int

// GenreDistribution counts samples per genre.
func GenreDistribution(samples []preprocessing.EncodedSample) Distribution {
	d := make(Distribution)
	for _, s := range samples {
		d[s.Genre]++
	}
	return d
}

// KeyDistribution counts samples per key.
func KeyDistribution(samples []preprocessing.EncodedSample) Distribution {
	d := make(Distribution)
	for _, s := range samples {
		d[s.Key]++
	}
	return d
}

// SourceDistribution counts samples per provenance source.
func SourceDistribution(samples []preprocessing.EncodedSample) Distribution {
	d := make(Distribution)
	for _, s := range samples {
		d[s.Source]++
	}
	return d
}

// Top returns the n most frequent values, ties broken lexicographically.
func (d Distribution) Top(n int) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if d[keys[i]] != d[keys[j]] {
			return d[keys[i]] > d[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n < len(keys) {
		keys = keys[:n]
	}
	return keys
}

// LogSummary reports partition sizes and the train-set genre distribution
// through the structured log stream. Preparation runs always complete and
// report counts; this is their user-visible summary.
func LogSummary(train, val, test []preprocessing.EncodedSample) {
	logger := log.GetLoggerWithName("dataset")
	logger.Info("split summary",
		log.TrainSizeKey, len(train),
		log.ValSizeKey, len(val),
		log.TestSizeKey, len(test),
	)
	genres := GenreDistribution(train)
	for _, genre := range genres.Top(len(genres)) {
		logger.Info("train genre distribution",
			"genre", genre,
			"count", genres[genre],
		)
	}
}
