// Package publish writes the encoded seed and its serial number file.
package publish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Config holds the output locations.
type Config struct {
	SeedPath   string // Encoded VariationsSeed
	SerialPath string // Serial number, read downstream as an ETag
}

// Writer replaces the seed and serial files atomically.
type Writer struct {
	config Config
}

// NewWriter creates a writer for the given paths.
func NewWriter(config Config) *Writer {
	return &Writer{config: config}
}

// Publish writes payload to the seed path and then serial to the serial
// path. Each file is replaced by rename, so readers see either the old or
// the new content. The seed goes first: a serial number on disk always has
// its seed next to it.
func (w *Writer) Publish(serial string, payload []byte) error {
	if err := WriteFileAtomic(w.config.SeedPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write seed: %w", err)
	}
	if err := WriteFileAtomic(w.config.SerialPath, []byte(serial), 0644); err != nil {
		return fmt.Errorf("failed to write serial number: %w", err)
	}
	return nil
}

// WriteFileAtomic writes data to a temp file beside path, syncs it and
// renames it over path. The temp file is removed on failure.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, perm, renameio.WithStaticPermissions(perm))
}
