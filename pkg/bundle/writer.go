// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// delimiter separates the path header and the content of every entry.
const delimiter = "---"

// WriteBundle writes every entry to outputPath in order: the normalized
// path, a delimiter line, the content (or a diagnostic when reading
// failed), then a trailing newline and a closing delimiter line.
// Creating or writing the bundle is the only fatal failure in a run.
func WriteBundle(outputPath string, entries []Entry, logger *zap.Logger) error {
	logger.Debug("Writing bundle", zap.String("file", outputPath), zap.Int("entries", len(entries)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, entry := range entries {
		if _, err := writer.WriteString(formatEntry(entry)); err != nil {
			logger.Error("Failed to write entry to bundle",
				zap.String("file", outputPath),
				zap.String("entryPath", entry.Path),
				zap.Error(err))
			return fmt.Errorf("failed to write entry %s: %w", entry.Path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// formatEntry renders one entry. The diagnostic for a failed entry is a
// single line and never a bare delimiter, so the bundle always contains
// exactly two delimiter lines per entry.
func formatEntry(entry Entry) string {
	path := filepath.ToSlash(entry.Path)
	body := entry.Content
	if entry.Err != nil {
		body = fmt.Sprintf("error: cannot read %s: %v", path, entry.Err)
	}
	return path + "\n" + delimiter + "\n" + body + "\n" + delimiter + "\n"
}
