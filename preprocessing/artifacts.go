package preprocessing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/chordgen/core/model"
	"github.com/YuminosukeSato/chordgen/pkg/errors"
)

// Artifact file names shared by preparation and generation.
const (
	ChordVocabFile    = "chord_vocab.json"
	MetadataVocabFile = "metadata_vocab.json"
	VocabSnapshotFile = "vocabulary.gob"
)

// ChordVocabRecord is the persisted chord vocabulary artifact.
type ChordVocabRecord struct {
	VocabSize     int               `json:"vocab_size"`
	ChordToID     map[string]int    `json:"chord_to_id"`
	IDToChord     map[int]string    `json:"id_to_chord"`
	SpecialTokens map[string]string `json:"special_tokens"`
}

// MetadataVocabRecord is the persisted metadata vocabulary artifact, one
// flat token→id mapping per axis.
type MetadataVocabRecord struct {
	GenreVocab     map[string]int `json:"genre_vocab"`
	MoodVocab      map[string]int `json:"mood_vocab"`
	KeyVocab       map[string]int `json:"key_vocab"`
	ScaleTypeVocab map[string]int `json:"scale_type_vocab"`
}

// SaveVocabularies writes the chord and metadata vocabulary artifacts into
// dir. The records are the contract between offline preparation and online
// generation; ids stay stable across the boundary.
func SaveVocabularies(v *Vocabulary, dir string) error {
	chordRecord := ChordVocabRecord{
		VocabSize: v.Size(),
		ChordToID: v.ChordToID,
		IDToChord: v.IDToChord,
		SpecialTokens: map[string]string{
			"pad":   PadToken,
			"start": StartToken,
			"end":   EndToken,
			"unk":   UnkToken,
		},
	}
	if err := writeJSON(filepath.Join(dir, ChordVocabFile), chordRecord); err != nil {
		return err
	}

	metadataRecord := MetadataVocabRecord{
		GenreVocab:     v.GenreToID,
		MoodVocab:      v.MoodToID,
		KeyVocab:       v.KeyToID,
		ScaleTypeVocab: v.ScaleTypeToID,
	}
	return writeJSON(filepath.Join(dir, MetadataVocabFile), metadataRecord)
}

// LoadVocabularies restores a Vocabulary from the artifacts in dir. The
// frame length is not part of the persisted records and must be supplied by
// the caller (DefaultMaxSequenceLength for the standard pipeline).
func LoadVocabularies(dir string, maxSequenceLength int) (*Vocabulary, error) {
	var chordRecord ChordVocabRecord
	if err := readJSON(filepath.Join(dir, ChordVocabFile), &chordRecord); err != nil {
		return nil, err
	}

	var metadataRecord MetadataVocabRecord
	if err := readJSON(filepath.Join(dir, MetadataVocabFile), &metadataRecord); err != nil {
		return nil, err
	}

	return &Vocabulary{
		MaxSequenceLength: maxSequenceLength,
		ChordToID:         chordRecord.ChordToID,
		IDToChord:         chordRecord.IDToChord,
		GenreToID:         metadataRecord.GenreVocab,
		MoodToID:          metadataRecord.MoodVocab,
		KeyToID:           metadataRecord.KeyVocab,
		ScaleTypeToID:     metadataRecord.ScaleTypeVocab,
	}, nil
}

// SaveVocabularySnapshot writes a single-file gob snapshot of the fitted
// vocabulary. The JSON artifacts are the cross-language contract with the
// training side; the snapshot is the native reload path and, unlike the JSON
// records, carries the frame length.
func SaveVocabularySnapshot(v *Vocabulary, path string) error {
	if err := model.SaveModel(v, path); err != nil {
		return errors.Wrapf(err, "failed to snapshot vocabulary to %s", path)
	}
	return nil
}

// LoadVocabularySnapshot restores a vocabulary written by
// SaveVocabularySnapshot, frame length included.
func LoadVocabularySnapshot(path string) (*Vocabulary, error) {
	var v Vocabulary
	if err := model.LoadModel(&v, path); err != nil {
		return nil, errors.Wrapf(err, "failed to load vocabulary snapshot %s", path)
	}
	return &v, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", filepath.Base(path))
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return errors.Newf("path traversal detected in file path: %s", path)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", cleanPath)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to parse %s", cleanPath)
	}
	return nil
}
