package summarizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/audio-summary/internal/logger"
)

func TestFilePrompt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("  First template \n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewFilePrompt(ctx, path, "fallback", logger.Nop())
	if got := p.Template(); got != "First template" {
		t.Errorf("Template() = %q, want %q", got, "First template")
	}

	if err := os.WriteFile(path, []byte("Second template"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(ctx, path); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := p.Template(); got != "Second template" {
		t.Errorf("Template() = %q, want %q", got, "Second template")
	}

	// Empty or missing files keep the last good template.
	if err := os.WriteFile(path, []byte("   "), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(ctx, path); err == nil {
		t.Error("Reload() should fail on an empty file")
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(ctx, path); err == nil {
		t.Error("Reload() should fail on a missing file")
	}
	if got := p.Template(); got != "Second template" {
		t.Errorf("Template() = %q, want %q", got, "Second template")
	}
}

func TestFilePromptFallback(t *testing.T) {
	p := NewFilePrompt(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), "fallback", logger.Nop())
	if got := p.Template(); got != "fallback" {
		t.Errorf("Template() = %q, want %q", got, "fallback")
	}
}
