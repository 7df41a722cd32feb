package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/audio-summary/internal/logger"
)

// StaticPrompt is a fixed template.
type StaticPrompt string

func (p StaticPrompt) Template() string { return string(p) }

// FilePrompt serves a template read from disk. Reload can be registered as a
// watcher handler; a failed reload keeps the last good template.
type FilePrompt struct {
	path   string
	logger logger.Logger

	mu       sync.RWMutex
	template string
}

// NewFilePrompt reads path once. fallback is served if the first read fails.
func NewFilePrompt(ctx context.Context, path, fallback string, log logger.Logger) *FilePrompt {
	p := &FilePrompt{path: path, logger: log, template: fallback}
	if err := p.Reload(ctx, path); err != nil {
		log.Warn(ctx, "Using default summary prompt: %v", err)
	}
	return p
}

func (p *FilePrompt) Template() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.template
}

// Path is the file backing the template.
func (p *FilePrompt) Path() string { return p.path }

// Reload re-reads the template file. The path argument is the file that
// changed and is ignored beyond logging.
func (p *FilePrompt) Reload(ctx context.Context, path string) error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read prompt file: %w", err)
	}

	template := strings.TrimSpace(string(data))
	if template == "" {
		return fmt.Errorf("prompt file %s is empty", p.path)
	}

	p.mu.Lock()
	p.template = template
	p.mu.Unlock()

	p.logger.Info(ctx, "Summary prompt loaded from %s", path)
	return nil
}
