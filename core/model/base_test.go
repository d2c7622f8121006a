package model

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestBaseEstimatorLifecycle(t *testing.T) {
	var b BaseEstimator
	if b.IsFitted() {
		t.Error("zero value must report not fitted")
	}

	b.SetFitted()
	if !b.IsFitted() {
		t.Error("SetFitted did not stick")
	}

	b.Reset()
	if b.IsFitted() {
		t.Error("Reset did not clear the fitted state")
	}
}

type vocabSnapshot struct {
	ChordToID map[string]int
	MaxLength int
}

func TestModelPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.gob")
	in := vocabSnapshot{
		ChordToID: map[string]int{"<PAD>": 0, "C": 4, "G": 5},
		MaxLength: 12,
	}

	if err := SaveModel(&in, path); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}

	var out vocabSnapshot
	if err := LoadModel(&out, path); err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	if out.MaxLength != in.MaxLength || len(out.ChordToID) != len(in.ChordToID) {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
	if out.ChordToID["C"] != 4 {
		t.Errorf("chord id changed: %d", out.ChordToID["C"])
	}
}

func TestModelPersistenceWriterReader(t *testing.T) {
	var buf bytes.Buffer
	in := vocabSnapshot{ChordToID: map[string]int{"Am": 6}, MaxLength: 8}

	if err := SaveModelToWriter(&in, &buf); err != nil {
		t.Fatalf("SaveModelToWriter failed: %v", err)
	}
	var out vocabSnapshot
	if err := LoadModelFromReader(&out, &buf); err != nil {
		t.Fatalf("LoadModelFromReader failed: %v", err)
	}
	if out.ChordToID["Am"] != 6 || out.MaxLength != 8 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	var out vocabSnapshot
	if err := LoadModel(&out, filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("expected error for missing file")
	}
}
