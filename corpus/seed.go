package corpus

// SeedProgressions returns the built-in base corpus of well-known chord
// progressions. IDs are assigned sequentially from 1 and every entry is
// marked SourceOriginal. Callers receive a fresh copy on every call.
func SeedProgressions() []Progression {
	out := make([]Progression, len(seedProgressions))
	for i, p := range seedProgressions {
		c := p.Clone()
		c.ID = i + 1
		c.Source = SourceOriginal
		out[i] = c
	}
	return out
}

var seedProgressions = []Progression{
	// Pop
	{Chords: []string{"C", "G", "Am", "F"}, RomanNumerals: []string{"I", "V", "vi", "IV"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "uplifting", SongName: "I-V-vi-IV (Axis of Awesome)"},
	{Chords: []string{"C", "Am", "F", "G"}, RomanNumerals: []string{"I", "vi", "IV", "V"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "nostalgic", SongName: "50s Progression"},
	{Chords: []string{"Am", "F", "C", "G"}, RomanNumerals: []string{"vi", "IV", "I", "V"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "melancholic", SongName: "vi-IV-I-V"},
	{Chords: []string{"C", "F", "G", "C"}, RomanNumerals: []string{"I", "IV", "V", "I"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "happy", SongName: "Classic I-IV-V-I"},
	{Chords: []string{"C", "Em", "F", "G"}, RomanNumerals: []string{"I", "iii", "IV", "V"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "bright", SongName: "I-iii-IV-V"},
	{Chords: []string{"C", "Dm", "Em", "F"}, RomanNumerals: []string{"I", "ii", "iii", "IV"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "ascending", SongName: "Ascending Progression"},
	{Chords: []string{"C", "G", "F", "C"}, RomanNumerals: []string{"I", "V", "IV", "I"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "simple", SongName: "Simple I-V-IV-I"},

	// Rock
	{Chords: []string{"C", "F", "G"}, RomanNumerals: []string{"I", "IV", "V"}, Key: "C", ScaleType: "major", Genre: "rock", Mood: "energetic", SongName: "Classic Rock I-IV-V"},
	{Chords: []string{"C", "Bb", "F"}, RomanNumerals: []string{"I", "bVII", "IV"}, Key: "C", ScaleType: "major", Genre: "rock", Mood: "powerful", SongName: "I-bVII-IV (Mixolydian)"},
	{Chords: []string{"C", "Bb", "Ab", "Bb"}, RomanNumerals: []string{"I", "bVII", "bVI", "bVII"}, Key: "C", ScaleType: "major", Genre: "rock", Mood: "dark", SongName: "I-bVII-bVI-bVII"},
	{Chords: []string{"C", "Eb", "Bb", "F"}, RomanNumerals: []string{"I", "bIII", "bVII", "IV"}, Key: "C", ScaleType: "major", Genre: "rock", Mood: "aggressive", SongName: "I-bIII-bVII-IV"},
	{Chords: []string{"Am", "G", "F", "E"}, RomanNumerals: []string{"i", "VII", "VI", "V"}, Key: "Am", ScaleType: "minor", Genre: "rock", Mood: "dramatic", SongName: "Minor Rock Progression"},

	// Blues
	{Chords: []string{"C7", "C7", "C7", "C7", "F7", "F7", "C7", "C7", "G7", "F7", "C7", "G7"}, RomanNumerals: []string{"I7", "I7", "I7", "I7", "IV7", "IV7", "I7", "I7", "V7", "IV7", "I7", "V7"}, Key: "C", ScaleType: "major", Genre: "blues", Mood: "bluesy", SongName: "12-Bar Blues"},
	{Chords: []string{"C7", "F7", "C7", "G7"}, RomanNumerals: []string{"I7", "IV7", "I7", "V7"}, Key: "C", ScaleType: "major", Genre: "blues", Mood: "groovy", SongName: "Simple Blues"},
	{Chords: []string{"C7", "F7", "C7", "C7"}, RomanNumerals: []string{"I7", "IV7", "I7", "I7"}, Key: "C", ScaleType: "major", Genre: "blues", Mood: "laid-back", SongName: "Blues Turnaround"},

	// Jazz
	{Chords: []string{"Dm7", "G7", "Cmaj7"}, RomanNumerals: []string{"ii7", "V7", "Imaj7"}, Key: "C", ScaleType: "major", Genre: "jazz", Mood: "sophisticated", SongName: "ii-V-I"},
	{Chords: []string{"Cmaj7", "Am7", "Dm7", "G7"}, RomanNumerals: []string{"Imaj7", "vi7", "ii7", "V7"}, Key: "C", ScaleType: "major", Genre: "jazz", Mood: "smooth", SongName: "I-vi-ii-V"},
	{Chords: []string{"Cmaj7", "A7", "Dm7", "G7"}, RomanNumerals: []string{"Imaj7", "VI7", "ii7", "V7"}, Key: "C", ScaleType: "major", Genre: "jazz", Mood: "jazzy", SongName: "I-VI-ii-V (Rhythm Changes)"},
	{Chords: []string{"Cmaj7", "Dm7", "Em7", "Fmaj7"}, RomanNumerals: []string{"Imaj7", "ii7", "iii7", "IVmaj7"}, Key: "C", ScaleType: "major", Genre: "jazz", Mood: "mellow", SongName: "Diatonic Seventh Ascent"},
	{Chords: []string{"Cm7", "Fm7", "Bb7", "Ebmaj7"}, RomanNumerals: []string{"ii7", "V7", "I7", "IVmaj7"}, Key: "Bb", ScaleType: "major", Genre: "jazz", Mood: "minor-jazz", SongName: "Minor ii-V-I"},

	// Minor colors
	{Chords: []string{"Am", "F", "G", "Am"}, RomanNumerals: []string{"i", "VI", "VII", "i"}, Key: "Am", ScaleType: "minor", Genre: "pop", Mood: "sad", SongName: "i-VI-VII-i"},
	{Chords: []string{"Am", "Dm", "E", "Am"}, RomanNumerals: []string{"i", "iv", "V", "i"}, Key: "Am", ScaleType: "minor", Genre: "classical", Mood: "serious", SongName: "Harmonic Minor i-iv-V-i"},
	{Chords: []string{"Am", "C", "G", "F"}, RomanNumerals: []string{"i", "III", "VII", "VI"}, Key: "Am", ScaleType: "minor", Genre: "pop", Mood: "emotional", SongName: "i-III-VII-VI"},
	{Chords: []string{"Am", "Em", "F", "C"}, RomanNumerals: []string{"i", "v", "VI", "III"}, Key: "Am", ScaleType: "minor", Genre: "pop", Mood: "reflective", SongName: "i-v-VI-III"},

	// R&B and soul
	{Chords: []string{"Cmaj7", "Fmaj7", "Dm7", "G7"}, RomanNumerals: []string{"Imaj7", "IVmaj7", "ii7", "V7"}, Key: "C", ScaleType: "major", Genre: "rnb", Mood: "soulful", SongName: "R&B I-IV-ii-V"},
	{Chords: []string{"Am7", "Dm7", "G7", "Cmaj7"}, RomanNumerals: []string{"vi7", "ii7", "V7", "Imaj7"}, Key: "C", ScaleType: "major", Genre: "rnb", Mood: "groovy", SongName: "vi-ii-V-I"},

	// EDM
	{Chords: []string{"Am", "G", "F", "E"}, RomanNumerals: []string{"i", "VII", "VI", "V"}, Key: "Am", ScaleType: "minor", Genre: "edm", Mood: "energetic", SongName: "EDM Minor Progression"},
	{Chords: []string{"C", "Am", "G", "F"}, RomanNumerals: []string{"I", "vi", "V", "IV"}, Key: "C", ScaleType: "major", Genre: "edm", Mood: "uplifting", SongName: "EDM I-vi-V-IV"},

	// Extended
	{Chords: []string{"C", "G", "Am", "Em", "F", "C", "F", "G"}, RomanNumerals: []string{"I", "V", "vi", "iii", "IV", "I", "IV", "V"}, Key: "C", ScaleType: "major", Genre: "pop", Mood: "epic", SongName: "8-Chord Pop Progression"},
	{Chords: []string{"C", "Dm", "Em", "F", "G", "Am", "Bb", "C"}, RomanNumerals: []string{"I", "ii", "iii", "IV", "V", "vi", "bVII", "I"}, Key: "C", ScaleType: "major", Genre: "progressive", Mood: "journey", SongName: "Ascending Scale Journey"},
}
