// Package store persists form configurations and submission records as
// JSON files in the configured data directory. Records are published with
// write-temp-then-rename so readers never observe a partial write.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0o750

// ErrNotFound is returned when a form key or submission id has no record.
var ErrNotFound = errors.New("record not found")

// WriteFileAtomic publishes data at path by writing a sibling temp file,
// syncing it to disk and renaming it into place.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cannot write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cannot sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cannot close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cannot publish %s: %w", path, err)
	}
	return nil
}
