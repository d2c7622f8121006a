// Package corpus defines the chord-progression data model and the dataset
// files exchanged between the offline preparation stages. A dataset is a
// list of progressions plus a metadata envelope describing how it was
// produced.
package corpus

// Source values recording how a progression entered the corpus.
const (
	SourceOriginal   = "original"
	SourceTransposed = "transposed"
	SourceVariation  = "variation"
)

// Progression is an ordered chord sequence tagged with musical metadata.
// Chord order is musically significant and is never reordered; every
// transformation produces a new copy carrying provenance fields.
type Progression struct {
	ID            int      `json:"id"`
	Chords        []string `json:"progression"`
	RomanNumerals []string `json:"roman_numerals,omitempty"`
	Key           string   `json:"key"`
	ScaleType     string   `json:"scale_type"`
	Genre         string   `json:"genre"`
	Mood          string   `json:"mood"`
	SongName      string   `json:"song_name,omitempty"`

	// Provenance. Source is one of the Source* constants; the remaining
	// fields are set only on derived copies.
	Source              string `json:"source,omitempty"`
	OriginalID          int    `json:"original_id,omitempty"`
	OriginalKey         string `json:"original_key,omitempty"`
	TransposedSemitones int    `json:"transposed_semitones,omitempty"`
}

// Clone returns a deep copy of the progression. Derived copies must not
// alias the source's slices.
func (p Progression) Clone() Progression {
	out := p
	out.Chords = append([]string(nil), p.Chords...)
	if p.RomanNumerals != nil {
		out.RomanNumerals = append([]string(nil), p.RomanNumerals...)
	}
	return out
}

// EqualChords reports whether two chord sequences are identical in order
// and content.
func EqualChords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Metadata is the dataset envelope written alongside the progressions.
type Metadata struct {
	Version             string   `json:"version"`
	TotalProgressions   int      `json:"total_progressions"`
	BaseProgressions    int      `json:"base_progressions,omitempty"`
	VariationsAdded     int      `json:"variations_added,omitempty"`
	AugmentationMethods []string `json:"augmentation_methods,omitempty"`
	LastUpdated         string   `json:"last_updated,omitempty"`
	Description         string   `json:"description,omitempty"`
}

// Dataset is a corpus snapshot: progressions plus their envelope.
type Dataset struct {
	Progressions []Progression `json:"progressions"`
	Metadata     Metadata      `json:"metadata"`
}
