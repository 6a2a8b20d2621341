package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWrite writes data to path via a temp file followed by os.Rename,
// so a reader never observes a partially written file. Trimmed from
// core/atomicwriter.go's AtomicWriter.WriteFile: tractor is single-writer-
// per-file by construction (spec §5 — each file's pipeline owns its
// document exclusively, and the worker pool never assigns the same file to
// two workers), so the cross-process file-lock and backup machinery around
// concurrent writers to the same path is dropped; the temp-file+rename
// sequence itself is kept.
func AtomicWrite(path string, data []byte) error {
	info, statErr := os.Stat(path)
	mode := os.FileMode(0o644)
	if statErr == nil {
		mode = info.Mode()
	}

	tempPath := path + ".tractor.tmp"
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("rewrite: create temp file: %w", err)
	}

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("rewrite: write temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rewrite: close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rewrite: atomic rename: %w", err)
	}
	return nil
}

// TempPathFor reports the temp file AtomicWrite uses for path, so tests can
// assert it never leaks on the success path.
func TempPathFor(path string) string {
	return filepath.Clean(path) + ".tractor.tmp"
}
