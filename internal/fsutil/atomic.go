// Package fsutil provides filesystem helpers for basekeeper's state files.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to dir/name atomically using a temp file and rename.
// A crash mid-write leaves either the old file or the new file intact, never a
// partially-written one.
func WriteFileAtomic(dir, name string, data []byte, perm os.FileMode) error {
	targetPath := filepath.Join(dir, name)
	tmpPath := filepath.Join(dir, ".tmp-"+name)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath) // clean up on error

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, targetPath)
}

// EnsureOwnerDir creates dir with owner-only permissions if it does not
// exist, and tightens the mode to 0700 if it does. Idempotent.
func EnsureOwnerDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("fsutil: create directory %s: %w", dir, err)
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return fmt.Errorf("fsutil: restrict directory %s: %w", dir, err)
	}
	return nil
}

// EnsureOwnerFile creates path as an empty 0600 file if it does not exist.
// An existing file is left untouched. Idempotent.
func EnsureOwnerFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("fsutil: create file %s: %w", path, err)
	}
	return f.Close()
}
