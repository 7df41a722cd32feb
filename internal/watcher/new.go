package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
)

// New creates a Watcher that calls handler whenever filePath is written or
// recreated. The parent directory is watched so editors that save by rename
// are still observed.
func New(filePath string, handler EventHandler, log logger.Logger) (Watcher, error) {
	target, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		target:  target,
		handler: handler,
		logger:  log,
		watcher: watcher,
	}, nil
}
