// File: pkg/bundle/tree.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// WriteTree renders a sorted tree of the root directory followed by the
// supplemental entries that made it into the bundle, and writes it to
// cfg.Tree. A missing root contributes nothing, mirroring the collector.
func WriteTree(cfg Config, supplemental []string, logger *zap.Logger) error {
	var treeBuilder strings.Builder

	if info, err := os.Stat(cfg.RootDir); err == nil && info.IsDir() {
		treeBuilder.WriteString(filepath.ToSlash(cfg.RootDir) + "/\n")

		subtree, err := renderTree(cfg.RootDir, "", logger)
		if err != nil {
			logger.Warn("Failed to render directory tree", zap.String("directory", cfg.RootDir), zap.Error(err))
		} else if subtree != "" {
			treeBuilder.WriteString(subtree)
			treeBuilder.WriteString("\n")
		}
	}

	for _, extra := range supplemental {
		treeBuilder.WriteString(filepath.ToSlash(extra) + "\n")
	}

	if err := os.WriteFile(cfg.Tree, []byte(treeBuilder.String()), 0644); err != nil {
		return fmt.Errorf("failed to write tree file: %w", err)
	}

	logger.Debug("Wrote tree artifact", zap.String("file", cfg.Tree))
	return nil
}

// renderTree builds the connector-drawn listing of directory recursively.
// Entries are sorted directories first, then files, alphabetically.
func renderTree(directory, prefix string, logger *zap.Logger) (string, error) {
	var output []string

	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))

			subtree, err := renderTree(filepath.Join(directory, entry.Name()), prefix+extension, logger)
			if err != nil {
				logger.Warn("Failed to render subtree",
					zap.String("directory", filepath.Join(directory, entry.Name())),
					zap.Error(err))
				continue
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n"), nil
}
