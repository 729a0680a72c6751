// Package pipeline orchestrates dataset loading, caching, and aggregation.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"stucash/internal/dataset"
	"stucash/internal/model"
)

// LoadResult holds the output of the full dataset loading pipeline.
type LoadResult struct {
	Records     []model.CostRecord
	TotalFiles  int
	ParsedFiles int
	RowErrors   int
	FileErrors  int
	CityCount   int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and parses all CSV files from the data directory.
// It uses a bounded worker pool for parallel parsing.
func Load(dataDir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := dataset.ScanDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]dataset.ParseResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = dataset.ParseFile(files[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.RowErrors += pr.RowErrors
		result.Records = append(result.Records, pr.Records...)
	}

	result.CityCount = len(Cities(result.Records))
	return result, nil
}
