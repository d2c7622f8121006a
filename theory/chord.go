// Package theory implements the chord symbol parser and the semitone
// transposition engine. All operations are total: tokens that cannot be
// resolved to a known pitch class pass through unchanged rather than
// producing an error, so downstream pipelines never break on unexpected
// input such as already-encoded ids.
package theory

// Chord is the outcome of parsing a chord symbol. A parsed chord carries a
// root (one or two characters, the second being an accidental) and the
// remaining quality suffix, which is empty for a plain major triad. When the
// input was empty, Parsed reports false and Token holds the original input.
type Chord struct {
	Root    string
	Quality string
	Token   string
}

// Parsed reports whether a root could be extracted from the token.
func (c Chord) Parsed() bool {
	return c.Root != ""
}

// String reassembles the chord symbol. Unparsed chords yield the original
// token unchanged.
func (c Chord) String() string {
	if !c.Parsed() {
		return c.Token
	}
	return c.Root + c.Quality
}

// ParseChord splits a chord symbol into root and quality. The second
// character is treated as an accidental iff it is '#' or 'b', making the
// root two characters; everything after the root is the quality.
//
//	ParseChord("Cmaj7") -> {Root: "C", Quality: "maj7"}
//	ParseChord("Bbm")   -> {Root: "Bb", Quality: "m"}
//	ParseChord("")      -> unparsed zero chord
func ParseChord(token string) Chord {
	if len(token) == 0 {
		return Chord{Token: token}
	}

	if len(token) > 1 && (token[1] == 'b' || token[1] == '#') {
		return Chord{Root: token[:2], Quality: token[2:], Token: token}
	}
	return Chord{Root: token[:1], Quality: token[1:], Token: token}
}
