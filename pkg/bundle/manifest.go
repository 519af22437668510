// File: pkg/bundle/manifest.go
package bundle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ManifestFile describes one bundled entry in the run manifest.
type ManifestFile struct {
	Path      string `yaml:"path"`
	SizeBytes int64  `yaml:"size_bytes"`
	Error     string `yaml:"error,omitempty"`
}

// ManifestStats carries the collection counters plus the per-file read
// failures observed while bundling.
type ManifestStats struct {
	Walked            int `yaml:"walked"`
	Supplemental      int `yaml:"supplemental"`
	DuplicatesSkipped int `yaml:"duplicates_skipped"`
	MissingSkipped    int `yaml:"missing_skipped"`
	ReadFailures      int `yaml:"read_failures"`
}

// ManifestBundle describes the written bundle artifact.
type ManifestBundle struct {
	Path      string `yaml:"path"`
	SizeBytes int64  `yaml:"size_bytes"`
	SHA256    string `yaml:"sha256"`
}

// Manifest is the YAML document describing one completed bundling run.
type Manifest struct {
	RunID       string         `yaml:"run_id"`
	GeneratedAt string         `yaml:"generated_at"`
	RootDir     string         `yaml:"root_dir"`
	Stats       ManifestStats  `yaml:"stats"`
	Bundle      ManifestBundle `yaml:"bundle"`
	Files       []ManifestFile `yaml:"files"`
}

// BuildManifest assembles the manifest for a run whose bundle has
// already been written to cfg.Output.
func BuildManifest(cfg Config, entries []Entry, stats CollectStats) (Manifest, error) {
	bundleInfo, err := describeBundle(cfg.Output)
	if err != nil {
		return Manifest{}, err
	}

	files := make([]ManifestFile, 0, len(entries))
	readFailures := 0
	for _, entry := range entries {
		mf := ManifestFile{
			Path:      filepath.ToSlash(entry.Path),
			SizeBytes: entry.Size,
		}
		if entry.Err != nil {
			mf.Error = entry.Err.Error()
			readFailures++
		}
		files = append(files, mf)
	}

	return Manifest{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RootDir:     filepath.ToSlash(cfg.RootDir),
		Stats: ManifestStats{
			Walked:            stats.Walked,
			Supplemental:      stats.Supplemental,
			DuplicatesSkipped: stats.DuplicatesSkipped,
			MissingSkipped:    stats.MissingSkipped,
			ReadFailures:      readFailures,
		},
		Bundle: bundleInfo,
		Files:  files,
	}, nil
}

// WriteManifest serializes the run manifest as YAML to cfg.Manifest.
func WriteManifest(cfg Config, entries []Entry, stats CollectStats, logger *zap.Logger) error {
	manifest, err := BuildManifest(cfg, entries, stats)
	if err != nil {
		return fmt.Errorf("failed to build manifest: %w", err)
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(cfg.Manifest, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	logger.Debug("Wrote run manifest",
		zap.String("file", cfg.Manifest),
		zap.String("runID", manifest.RunID))
	return nil
}

// describeBundle stats and hashes the written bundle artifact.
func describeBundle(path string) (ManifestBundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return ManifestBundle{}, fmt.Errorf("failed to open bundle for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return ManifestBundle{}, fmt.Errorf("failed to hash bundle: %w", err)
	}

	return ManifestBundle{
		Path:      filepath.ToSlash(path),
		SizeBytes: size,
		SHA256:    hex.EncodeToString(h.Sum(nil)),
	}, nil
}
