package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"stucash/internal/dataset"
	"stucash/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache discovers, diffs against cache, parses only changed files,
// and returns the combined record set.
func LoadWithCache(dataDir string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	files, err := dataset.ScanDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}

	result := &CachedLoadResult{
		LoadResult: LoadResult{TotalFiles: len(files)},
	}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	// Diff: partition into changed and unchanged
	var toReparse []dataset.DiscoveredFile
	var unchanged []string

	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}

		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			unchanged = append(unchanged, f.Path)
		} else {
			toReparse = append(toReparse, f)
		}
	}

	result.CacheHits = len(unchanged)
	result.Reparsed = len(toReparse)

	// Evict tracker entries for files that no longer exist on disk
	onDisk := make(map[string]struct{}, len(files))
	for _, f := range files {
		onDisk[f.Path] = struct{}{}
	}
	for path := range tracked {
		if _, ok := onDisk[path]; !ok {
			_ = cache.DeleteFile(path)
		}
	}

	for i, path := range unchanged {
		records, err := cache.LoadFileRecords(path)
		if err != nil {
			return nil, fmt.Errorf("loading cached records: %w", err)
		}
		result.ParsedFiles++
		result.Records = append(result.Records, records...)
		if progressFn != nil {
			progressFn(i+1, result.TotalFiles)
		}
	}

	// Reparse changed files sequentially; datasets are few and small,
	// the worker pool in Load only pays off on the uncached path.
	for i, f := range toReparse {
		pr := dataset.ParseFile(f)
		if pr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.RowErrors += pr.RowErrors
		result.Records = append(result.Records, pr.Records...)

		if info, err := os.Stat(f.Path); err == nil {
			_ = cache.SaveFileRecords(f.Path, pr.Records, info.ModTime().UnixNano(), info.Size())
		}
		if progressFn != nil {
			progressFn(result.CacheHits+i+1, result.TotalFiles)
		}
	}

	result.CityCount = len(Cities(result.Records))
	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "stucash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "stucash")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "dataset.db")
}
