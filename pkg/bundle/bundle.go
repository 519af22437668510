package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Execute is the entry point used by the CLI. It runs one bundling pass
// with the built-in configuration.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()
	}

	if err := Run(DefaultConfig(), logger); err != nil {
		logger.Error("Failed to execute bundling process", zap.Error(err))
		return fmt.Errorf("bundling failed: %w", err)
	}
	return nil
}

// Run orchestrates one bundling pass: collect the paths, read every file
// sequentially, write the bundle, then the companion artifacts. Only a
// failure to produce the bundle itself aborts the run; everything else is
// logged and survived.
func Run(cfg Config, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting bundling process",
		zap.String("directory", cfg.RootDir),
		zap.String("output", cfg.Output))

	if err := ensureArtifactDir(cfg.Output); err != nil {
		logger.Error("Failed to create output directory", zap.String("file", cfg.Output), zap.Error(err))
		return err
	}

	paths, stats := CollectPaths(cfg, logger)

	entries := make([]Entry, 0, len(paths))
	failures := 0
	for _, path := range paths {
		logger.Debug("Processing file", zap.String("path", path))
		entry := ReadEntry(path)
		if entry.Err != nil {
			logger.Warn("Failed to read file, writing diagnostic instead",
				zap.String("path", path),
				zap.Error(entry.Err))
			failures++
		}
		entries = append(entries, entry)
	}

	if err := WriteBundle(cfg.Output, entries, logger); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	// The bundle is written at this point; companion artifact failures,
	// including creating their parent directories, are demoted to log
	// entries.
	if cfg.Tree != "" {
		err := ensureArtifactDir(cfg.Tree)
		if err == nil {
			err = WriteTree(cfg, paths[stats.Walked:], logger)
		}
		if err != nil {
			logger.Error("Failed to write tree artifact", zap.String("file", cfg.Tree), zap.Error(err))
		}
	}
	if cfg.Manifest != "" {
		err := ensureArtifactDir(cfg.Manifest)
		if err == nil {
			err = WriteManifest(cfg, entries, stats, logger)
		}
		if err != nil {
			logger.Error("Failed to write run manifest", zap.String("file", cfg.Manifest), zap.Error(err))
		}
	}

	logger.Info("Bundling process completed",
		zap.String("output", cfg.Output),
		zap.Int("totalFiles", len(entries)),
		zap.Int("readFailures", failures),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// ensureArtifactDir creates the parent directory of artifact so that
// creating the file itself cannot fail on a missing directory.
func ensureArtifactDir(artifact string) error {
	if artifact == "" {
		return nil
	}
	dir := filepath.Dir(artifact)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
	}
	return nil
}
