package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
)

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prompt.txt")
	w := &implWatcher{target: target}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to target", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create target", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"chmod target", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"remove target", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"write to sibling", fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.matches(tt.event); got != tt.want {
				t.Errorf("matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcherInvokesHandler(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prompt.txt")
	if err := os.WriteFile(target, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 16)
	w, err := New(target, func(ctx context.Context, path string) error {
		changed <- path
		return nil
	}, logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watch loop a moment to start draining events.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(target, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(target)
		if got != want {
			t.Errorf("handler path = %v, want %v", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called within 5s")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "prompt.txt"), nil, logger.Nop())
	if err == nil {
		t.Error("New() should fail when the parent directory does not exist")
	}
}
