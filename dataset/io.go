package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/chordgen/pkg/errors"
	"github.com/YuminosukeSato/chordgen/preprocessing"
)

// Split file names shared with model training.
const (
	TrainFile = "train.json"
	ValFile   = "val.json"
	TestFile  = "test.json"
)

// SaveSplits writes the three partitions as JSON files into dir.
func SaveSplits(train, val, test []preprocessing.EncodedSample, dir string) error {
	files := map[string][]preprocessing.EncodedSample{
		TrainFile: train,
		ValFile:   val,
		TestFile:  test,
	}
	for name, samples := range files {
		data, err := json.MarshalIndent(samples, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s", name)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}

// LoadSplits reads the three partitions written by SaveSplits.
func LoadSplits(dir string) (train, val, test []preprocessing.EncodedSample, err error) {
	if train, err = loadSplit(filepath.Join(dir, TrainFile)); err != nil {
		return nil, nil, nil, err
	}
	if val, err = loadSplit(filepath.Join(dir, ValFile)); err != nil {
		return nil, nil, nil, err
	}
	if test, err = loadSplit(filepath.Join(dir, TestFile)); err != nil {
		return nil, nil, nil, err
	}
	return train, val, test, nil
}

func loadSplit(path string) ([]preprocessing.EncodedSample, error) {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return nil, errors.Newf("path traversal detected in file path: %s", path)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", cleanPath)
	}
	var samples []preprocessing.EncodedSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", cleanPath)
	}
	return samples, nil
}
