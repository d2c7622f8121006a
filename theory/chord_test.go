package theory

import "testing"

// TestParseChord tests root/quality splitting across accidental and plain roots
func TestParseChord(t *testing.T) {
	tests := []struct {
		token   string
		root    string
		quality string
	}{
		{"C", "C", ""},
		{"Cmaj7", "C", "maj7"},
		{"Am", "A", "m"},
		{"Bb", "Bb", ""},
		{"Bbm7", "Bb", "m7"},
		{"F#m", "F#", "m"},
		{"G7", "G", "7"},
		{"Xyz", "X", "yz"},
	}

	for _, tt := range tests {
		c := ParseChord(tt.token)
		if !c.Parsed() {
			t.Errorf("ParseChord(%q): expected parsed chord", tt.token)
			continue
		}
		if c.Root != tt.root || c.Quality != tt.quality {
			t.Errorf("ParseChord(%q) = (%q, %q), want (%q, %q)",
				tt.token, c.Root, c.Quality, tt.root, tt.quality)
		}
		if c.String() != tt.token {
			t.Errorf("ParseChord(%q).String() = %q, want original token", tt.token, c.String())
		}
	}
}

// TestParseChordEmpty tests that empty input yields an unparsed chord
func TestParseChordEmpty(t *testing.T) {
	c := ParseChord("")
	if c.Parsed() {
		t.Error("ParseChord(\"\") should not be parsed")
	}
	if c.String() != "" {
		t.Errorf("ParseChord(\"\").String() = %q, want empty", c.String())
	}
}
