package scoring

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResultStorage loads and saves finished match results.
// Tests swap in an in-memory implementation.
type ResultStorage interface {
	// LoadAll loads every recorded result.
	LoadAll() ([]Result, error)
	// SaveAll replaces the stored results.
	SaveAll(results []Result) error
}

// JSONFileStorage keeps one JSON object per line.
type JSONFileStorage struct {
	path string
}

// DefaultPath is where results live when no path is given.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "go-glutton", "results.json"), nil
}

// NewJSONFileStorage stores results at path, or at DefaultPath when path is empty.
func NewJSONFileStorage(path string) (*JSONFileStorage, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &JSONFileStorage{path: path}, nil
}

func (jfs *JSONFileStorage) Path() string {
	return jfs.path
}

// LoadAll reads every result. A missing file is an empty history.
func (jfs *JSONFileStorage) LoadAll() ([]Result, error) {
	file, err := os.Open(jfs.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening results file for reading: %w", err)
	}
	defer file.Close()

	results := make([]Result, 0)
	decoder := json.NewDecoder(bufio.NewReader(file))
	for {
		var r Result
		if err := decoder.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error decoding result: %w", err)
		}
		results = append(results, r)
	}

	return results, nil
}

// SaveAll rewrites the file with the given results.
func (jfs *JSONFileStorage) SaveAll(results []Result) error {
	if err := os.MkdirAll(filepath.Dir(jfs.path), 0755); err != nil {
		return fmt.Errorf("error creating results directory: %w", err)
	}

	file, err := os.OpenFile(jfs.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening results file for writing: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}

	return writer.Flush()
}
