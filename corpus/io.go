package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/YuminosukeSato/chordgen/pkg/errors"
)

// LoadDataset reads a dataset file written by SaveDataset (or by any tool
// producing the same JSON layout).
func LoadDataset(path string) (*Dataset, error) {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return nil, errors.Newf("path traversal detected in file path: %s", path)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset file %s", cleanPath)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset file %s", cleanPath)
	}
	return &ds, nil
}

// SaveDataset writes a dataset file with an up-to-date envelope. The
// TotalProgressions and LastUpdated fields are filled in from the data.
func SaveDataset(ds *Dataset, path string) error {
	ds.Metadata.TotalProgressions = len(ds.Progressions)
	if ds.Metadata.LastUpdated == "" {
		ds.Metadata.LastUpdated = time.Now().Format("2006-01-02")
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal dataset")
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write dataset file %s", path)
	}
	return nil
}
