package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"pkg.jsn.cam/haystack/internal/batch"
)

/*generates a batch of random JSON test files with one hidden "golden" value*/

const outputDir = "test_data"

func main() {
	runID := uuid.New().String()
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	result, err := batch.Run(r, outputDir)
	if err != nil {
		log.Fatalf("Failed to generate batch: %v", err)
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("  Run ID:  %s\n", runID)
	fmt.Printf("  Files:   %d in %s/\n", result.Count, outputDir)
	fmt.Printf("  Size:    %s\n", humanize.Bytes(result.Bytes))
	fmt.Printf("  Marker:  %s\n", result.MarkerFile)
}
