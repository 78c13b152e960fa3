package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/filepaths"
)

// fileEntry holds a file path and its contents.
type fileEntry struct {
	path    string
	content []byte
}

// expandGlobs expands file arguments (which may contain glob patterns)
// into a sorted list of file entries with their contents, dropping any
// path that matches one of excludePatterns.
// Files are sorted lexically by their base filename.
func expandGlobs(args []string, excludePatterns []string) ([]fileEntry, error) {
	paths, err := filepaths.Expand(args...)
	if err != nil {
		return nil, fmt.Errorf("expand globs: %w", err)
	}

	for _, p := range excludePatterns {
		if _, err := filepaths.NewPattern(p); err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
	}

	if len(excludePatterns) > 0 {
		filtered := paths[:0]

		for _, path := range paths {
			if !filepaths.MatchAnyWithBase(path, excludePatterns) {
				filtered = append(filtered, path)
			}
		}

		paths = filtered
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no matching files for %v", args)
	}

	sort.Slice(paths, func(i, j int) bool {
		return filepath.Base(paths[i]) < filepath.Base(paths[j])
	})

	entries := make([]fileEntry, 0, len(paths))

	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", path, err)
		}

		entries = append(entries, fileEntry{path: path, content: content})
	}

	return entries, nil
}
