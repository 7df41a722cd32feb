package filemanager

import (
	"context"
	"time"
)

// Manager owns the lifecycle of files in the scratch directory.
type Manager interface {
	EnsureDirectory(path string) error
	DeleteFile(ctx context.Context, path string)
	SweepExpired(ctx context.Context, dir string, maxAge time.Duration) int
}
