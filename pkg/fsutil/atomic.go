// Package fsutil provides filesystem helpers shared by components that rewrite
// live configuration files.
package fsutil

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// WriteFileAtomic replaces the file at path with data without ever exposing a
// partial write: the content goes to a temporary sibling in the same directory
// (same filesystem, so the final rename is atomic), is synced to stable
// storage, then renamed over path. If anything fails before the rename the
// original file is untouched and the temporary file is best-effort removed.
func WriteFileAtomic(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"

	file, err := fsys.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		fsys.Remove(tmpPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		fsys.Remove(tmpPath)
		return fmt.Errorf("syncing temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("renaming %s into place: %w", tmpPath, err)
	}
	return nil
}
