package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFileStorage_SaveAndLoad(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "nested", "results.json")
	storage, err := NewJSONFileStorage(testPath)
	if err != nil {
		t.Fatalf("NewJSONFileStorage returned error: %v", err)
	}
	if storage.Path() != testPath {
		t.Errorf("Expected path %s, got %s", testPath, storage.Path())
	}

	// 1. Load on a missing file is an empty history
	results, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on non-existent file returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(results))
	}

	// 2. Save creates the directory
	want := []Result{
		{Outcome: OutcomeWon, Seconds: 75, Contacts: 3, Seed: 1, Timestamp: "2026-01-01T00:00:00Z"},
		{Outcome: OutcomeLost, Seconds: 9, Seed: 2, Timestamp: "2026-01-02T00:00:00Z"},
	}
	if err := storage.SaveAll(want); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if _, err := os.Stat(testPath); err != nil {
		t.Errorf("File was not created at %s: %v", testPath, err)
	}

	// 3. Load returns what was saved
	got, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Result %d mismatch: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestJSONFileStorage_CorruptFile(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(testPath, []byte("{ not valid json }"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	storage := &JSONFileStorage{path: testPath}
	if _, err := storage.LoadAll(); err == nil {
		t.Error("Expected error when loading corrupt file, got nil")
	}
}

func TestJSONFileStorage_EmptyFile(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(testPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write empty file: %v", err)
	}

	storage := &JSONFileStorage{path: testPath}
	results, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty file returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results from empty file, got %d", len(results))
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}
	if filepath.Base(p) != "results.json" || filepath.Base(filepath.Dir(p)) != "go-glutton" {
		t.Errorf("Unexpected default path %s", p)
	}
}
