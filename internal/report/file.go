package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/betsim/internal/statistics"
)

// WriteSummaryFile renders the full report and writes it to filename
// atomically. A reader re-reading the file between runs sees either the
// previous report or the new one, never a partial write.
func WriteSummaryFile(filename string, summary *statistics.Summary) error {
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteSummary(summary); err != nil {
		return err
	}
	return writeFileAtomic(filename, buf.Bytes(), 0o644)
}

// writeFileAtomic writes data to a sibling temp file, syncs it, then renames
// it over filename. The temp file lives in the same directory because
// cross-filesystem renames are not atomic.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
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

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
