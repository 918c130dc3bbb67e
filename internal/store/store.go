// Package store persists the task and episode collections as flat JSON
// files. Each collection is read and written whole; writes go through a
// temporary file renamed over the target so concurrent readers never see a
// partially written collection.
//
// The files are single-writer by convention: the external trigger must
// guarantee invocations do not overlap. No file lock is taken here.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// StorageError reports that a persisted collection could not be read or
// written. It is fatal to the whole invocation, unlike per-task pipeline
// failures.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// writeFileAtomic writes data to path via a sibling temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// readFile returns the file contents, or (nil, nil) when the file does not
// exist yet: an absent collection is an empty collection, not an error.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}
