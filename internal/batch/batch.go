// Package batch orchestrates one generation run: a fixed-size batch of
// records written to individually named files, with the marker injected into
// exactly one record at a randomly chosen index.
package batch

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"pkg.jsn.cam/haystack/internal/generate"
	"pkg.jsn.cam/haystack/internal/inject"
	"pkg.jsn.cam/haystack/pkg/record"
)

const (
	// Size is the number of records per batch.
	Size = 100
	// FilePattern names output files by zero-padded batch index.
	FilePattern = "test_file_%03d.json"
)

// Result reports one completed run.
type Result struct {
	Count       int    // records written
	MarkerIndex int    // batch index holding the marker
	MarkerFile  string // filename holding the marker
	Bytes       uint64 // total bytes written
}

// Run generates a full batch into dir, creating it if absent. The marker
// index is drawn before generation so injection happens inline. The first
// filesystem error aborts the run; already-written files are left behind.
func Run(r *rand.Rand, dir string) (*Result, error) {
	markerIndex := r.IntN(Size)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var written uint64
	for i := 0; i < Size; i++ {
		rec := generate.Generate(r)
		if i == markerIndex {
			rec = inject.Inject(r, rec)
		}

		data, err := record.Encode(rec)
		if err != nil {
			return nil, fmt.Errorf("encode record %d: %w", i, err)
		}

		name := fmt.Sprintf(FilePattern, i)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		written += uint64(len(data))
	}

	return &Result{
		Count:       Size,
		MarkerIndex: markerIndex,
		MarkerFile:  fmt.Sprintf(FilePattern, markerIndex),
		Bytes:       written,
	}, nil
}
