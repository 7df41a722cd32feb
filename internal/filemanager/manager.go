package filemanager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// EnsureDirectory creates path and its parents if missing.
func (m *implManager) EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// DeleteFile removes path, logs a warning if it fails. Empty or missing paths are a no-op.
func (m *implManager) DeleteFile(ctx context.Context, path string) {
	if path == "" {
		return
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		m.logger.Warn(ctx, "Failed to delete file %s: %v", path, err)
		return
	}

	m.logger.Debug(ctx, "Deleted file: %s", path)
}

// SweepExpired removes entries of dir (non-recursive) modified more than
// maxAge ago and returns how many were removed.
func (m *implManager) SweepExpired(ctx context.Context, dir string, maxAge time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.logger.Error(ctx, "Error listing %s for cleanup: %v", dir, err)
		}
		return 0
	}

	now := m.now()
	removed := 0

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			m.logger.Error(ctx, "Error processing file %s for cleanup: %v", entry.Name(), err)
			continue
		}

		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}

		if err := os.Remove(path); err != nil {
			m.logger.Error(ctx, "Error removing %s during cleanup: %v", entry.Name(), err)
			continue
		}

		m.logger.Info(ctx, "Cleaned up old temp file: %s", entry.Name())
		removed++
	}

	return removed
}
