package theory

// chromaticScale is the canonical sharp-based spelling of the 12 pitch
// classes. All transposition output uses these spellings.
var chromaticScale = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// enharmonicMap maps each black-key spelling to its alias in the other
// accidental system, both directions.
var enharmonicMap = map[string]string{
	"C#": "Db", "D#": "Eb", "F#": "Gb", "G#": "Ab", "A#": "Bb",
	"Db": "C#", "Eb": "D#", "Gb": "F#", "Ab": "G#", "Bb": "A#",
}

// noteIndex maps every recognized spelling, sharp or flat, to its chromatic
// position.
var noteIndex = func() map[string]int {
	idx := make(map[string]int, 17)
	for i, n := range chromaticScale {
		idx[n] = i
	}
	for flat, sharp := range map[string]string{"Db": "C#", "Eb": "D#", "Gb": "F#", "Ab": "G#", "Bb": "A#"} {
		idx[flat] = idx[sharp]
	}
	return idx
}()

// NormalizeNote returns the sharp-based spelling of a note, converting flat
// aliases. Unrecognized input is returned unchanged.
func NormalizeNote(note string) string {
	if i, ok := noteIndex[note]; ok {
		return chromaticScale[i]
	}
	return note
}

// TransposeNote shifts a note by the given number of semitones and returns
// the sharp-based spelling. Semitones may be any integer, positive or
// negative; only its value modulo 12 matters. Notes that do not resolve to
// one of the 12 pitch classes pass through unchanged.
func TransposeNote(note string, semitones int) string {
	i, ok := noteIndex[note]
	if !ok {
		return note
	}
	// ((x mod 12) + 12) mod 12 keeps negative shifts in range.
	shift := ((semitones % 12) + 12) % 12
	return chromaticScale[(i+shift)%12]
}

// TransposeChord shifts a chord's root by the given number of semitones,
// leaving the quality untouched. Unparseable chords pass through unchanged.
func TransposeChord(chord string, semitones int) string {
	c := ParseChord(chord)
	if !c.Parsed() {
		return chord
	}
	return TransposeNote(c.Root, semitones) + c.Quality
}

// TransposeProgression transposes every chord in the progression, preserving
// order and length.
func TransposeProgression(progression []string, semitones int) []string {
	out := make([]string, len(progression))
	for i, chord := range progression {
		out[i] = TransposeChord(chord, semitones)
	}
	return out
}

// TransposeKey shifts a key signature, keeping a trailing minor marker. The
// marker sits at position 1 for single-letter roots ("Am"), at position 2
// for accidental roots ("F#m"); anything else is treated as a plain major
// key.
func TransposeKey(key string, semitones int) string {
	root, suffix := key, ""
	switch {
	case len(key) > 1 && key[1] == 'm':
		root, suffix = key[:1], "m"
	case len(key) > 2 && key[2] == 'm':
		root, suffix = key[:2], "m"
	}
	return TransposeNote(root, semitones) + suffix
}
