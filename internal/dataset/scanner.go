// Package dataset discovers and parses historical student-cost CSV files.
package dataset

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanDir walks the data directory and discovers all CSV dataset files.
// A missing directory is not an error; it just yields no files.
func ScanDir(dataDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}

		files = append(files, DiscoveredFile{
			Path: path,
			Name: strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
		})
		return nil
	})

	return files, err
}
