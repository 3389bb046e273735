// Package persistence reads and writes JSON documents on disk. Writes replace
// the target in one step so a reader sees either the old or the new document.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned when a file exists but does not hold valid JSON for
// the requested type.
var ErrCorrupt = errors.New("corrupt data file")

// FileMode is the permission of files written by WriteJSON.
const FileMode = 0644

// rename is swapped out in tests to simulate a failing disk.
var rename = os.Rename

// ReadJSON decodes the file at path into v. A missing file is reported with an
// error matching fs.ErrNotExist so callers can treat it as an empty state.
func ReadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return nil
}

// WriteJSON replaces the file at path with the indented JSON encoding of v.
// The document is written to a temporary file in the same directory, synced,
// and renamed over path. On failure path is left untouched.
func WriteJSON(path string, v interface{}) (err error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(FileMode); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = rename(tmp.Name(), path); err != nil {
		return err
	}
	return syncDir(dir)
}

// syncDir flushes the directory entry so the rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := d.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}
