package integration

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"pkg.jsn.cam/haystack/internal/batch"
	"pkg.jsn.cam/haystack/internal/inject"
	"pkg.jsn.cam/haystack/pkg/record"
)

// TestFullBatch runs a complete generation end to end and checks everything
// an operator relies on: file count, naming, valid JSON, and exactly one
// hidden marker in the reported file.
func TestFullBatch(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "test_data")
	r := rand.New(rand.NewPCG(42, 0))

	result, err := batch.Run(r, dir)
	if err != nil {
		t.Fatalf("Batch run failed: %v", err)
	}

	// Exactly 100 files, named test_file_000.json .. test_file_099.json.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != batch.Size {
		t.Fatalf("Output contains %d files, want %d", len(entries), batch.Size)
	}

	found := make(map[string]bool, len(entries))
	for _, entry := range entries {
		found[entry.Name()] = true
	}
	for i := 0; i < batch.Size; i++ {
		name := fmt.Sprintf("test_file_%03d.json", i)
		if !found[name] {
			t.Errorf("Expected file %s missing", name)
		}
	}

	// Every file parses as JSON; exactly one contains the marker, and it is
	// the one the run reported.
	var markerFiles []string
	for i := 0; i < batch.Size; i++ {
		name := fmt.Sprintf("test_file_%03d.json", i)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}

		var decoded map[string]any
		if err := jsoniter.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("%s does not parse as JSON: %v", name, err)
		}
		if len(decoded) == 0 {
			t.Errorf("%s decoded to an empty record", name)
		}
		if record.ContainsString(decoded, inject.Marker) {
			markerFiles = append(markerFiles, name)
		}
	}

	if len(markerFiles) != 1 {
		t.Fatalf("Marker found in %d files (%v), want exactly 1", len(markerFiles), markerFiles)
	}
	if markerFiles[0] != result.MarkerFile {
		t.Errorf("Marker is in %s, but run reported %s", markerFiles[0], result.MarkerFile)
	}
}

// TestRepeatedBatches verifies independent runs stay self-consistent: each
// batch carries its own single marker regardless of seed.
func TestRepeatedBatches(t *testing.T) {
	t.Parallel()

	for seed := uint64(100); seed < 103; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			result, err := batch.Run(rand.New(rand.NewPCG(seed, seed)), dir)
			if err != nil {
				t.Fatalf("Batch run failed: %v", err)
			}

			data, err := os.ReadFile(filepath.Join(dir, result.MarkerFile))
			if err != nil {
				t.Fatalf("Failed to read reported marker file: %v", err)
			}

			var decoded map[string]any
			if err := jsoniter.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Marker file does not parse as JSON: %v", err)
			}
			if !record.ContainsString(decoded, inject.Marker) {
				t.Errorf("Reported marker file %s does not contain %q", result.MarkerFile, inject.Marker)
			}
		})
	}
}
