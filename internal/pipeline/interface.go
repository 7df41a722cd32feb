package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

// Pipeline turns a clip URL into a summary: fetch, transcribe, summarize.
type Pipeline interface {
	Run(ctx context.Context, url string) (*models.Result, error)
}

// FileRemover deletes files best-effort and never reports failure.
type FileRemover interface {
	DeleteFile(ctx context.Context, path string)
}
