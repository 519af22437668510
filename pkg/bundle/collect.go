// File: pkg/bundle/collect.go
package bundle

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectStats summarizes one collection pass for the run manifest and
// the completion log.
type CollectStats struct {
	Walked            int // Files found under the root directory.
	Supplemental      int // Supplemental entries appended to the sequence.
	DuplicatesSkipped int // Supplemental entries already present in the sequence.
	MissingSkipped    int // Supplemental entries absent from disk.
}

// CollectPaths produces the ordered sequence of candidate file paths:
// every file under cfg.RootDir in traversal order, followed by the
// supplemental entries that exist on disk and are not already collected.
// A missing root directory contributes zero paths and is never fatal.
func CollectPaths(cfg Config, logger *zap.Logger) ([]string, CollectStats) {
	var stats CollectStats

	paths := walkRoot(cfg.RootDir, logger)
	stats.Walked = len(paths)

	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		seen[p] = struct{}{}
	}

	for _, extra := range cfg.Supplemental {
		if _, dup := seen[extra]; dup {
			logger.Debug("Skipping supplemental file already collected", zap.String("path", extra))
			stats.DuplicatesSkipped++
			continue
		}

		info, err := os.Stat(extra)
		if err != nil || !info.Mode().IsRegular() {
			logger.Warn("Supplemental file not found, skipping", zap.String("path", extra))
			stats.MissingSkipped++
			continue
		}

		paths = append(paths, extra)
		seen[extra] = struct{}{}
		stats.Supplemental++
	}

	logger.Debug("Completed path collection",
		zap.Int("walked", stats.Walked),
		zap.Int("supplemental", stats.Supplemental),
		zap.Int("duplicatesSkipped", stats.DuplicatesSkipped),
		zap.Int("missingSkipped", stats.MissingSkipped))
	return paths, stats
}

// walkRoot recursively collects every file under root, in the order the
// directory listing yields them. Paths are recorded exactly as the walk
// joins them. A path that errors during traversal is skipped.
func walkRoot(root string, logger *zap.Logger) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		logger.Warn("Root directory not found, skipping", zap.String("directory", root))
		return nil
	}

	var paths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if walkErr != nil {
		// The callback never returns an error, so this only fires when the
		// root itself vanishes mid-walk.
		logger.Warn("Directory traversal ended early", zap.String("directory", root), zap.Error(walkErr))
	}

	return paths
}
