// File: pkg/bundle/decode.go
package bundle

import (
	"errors"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports file bytes that do not decode as UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// Entry is the per-file result consumed by the bundle writer: either the
// decoded content or the failure that replaced it. A failed Entry is
// data rendered into the bundle, never an abort condition.
type Entry struct {
	Path    string // Path exactly as collected.
	Content string // Decoded UTF-8 content; empty when Err != nil.
	Size    int64  // Content size in bytes; 0 when Err != nil.
	Err     error  // Read or decode failure; nil on success.
}

// ReadEntry reads path as UTF-8 text. Any failure (missing file,
// permission error, bytes that do not decode as UTF-8) is captured on
// the returned Entry instead of being escalated.
func ReadEntry(path string) Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return Entry{Path: path, Err: ErrInvalidUTF8}
	}
	return Entry{Path: path, Content: string(data), Size: int64(len(data))}
}
