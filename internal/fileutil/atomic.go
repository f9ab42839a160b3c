// Package fileutil holds the file helpers used by the history exporters.
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic streams the output of write into a temp file next to filename
// and renames it into place once fully synced. Readers see either the old
// file or the complete new one.
func WriteAtomic(filename string, perm os.FileMode, write func(io.Writer) error) error {
	// Same directory so the rename never crosses filesystems.
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := write(tmpFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// WriteFileAtomic is WriteAtomic for an in-memory payload.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return WriteAtomic(filename, perm, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}

// FreePath returns the first dir/prefix(n).ext, counting from 1, that does
// not exist yet.
func FreePath(dir, prefix, ext string) (string, error) {
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d).%s", prefix, n, ext))
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
	}
}

// ResolveExportPath maps an export target to a file path. A directory
// (existing, or a path ending in a separator) gets the next free
// prefix(n).ext inside it; a path without the extension gets it appended.
func ResolveExportPath(path, prefix, ext string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return FreePath(path, prefix, ext)
	}
	if len(path) > 0 && os.IsPathSeparator(path[len(path)-1]) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
		return FreePath(path, prefix, ext)
	}
	if filepath.Ext(path) != "."+ext {
		path += "." + ext
	}
	return path, nil
}
