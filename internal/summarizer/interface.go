package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

// Summarizer condenses a transcript into markdown.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, meta models.VideoMetadata) (string, error)
}

// PromptSource supplies the instruction placed before the transcript.
type PromptSource interface {
	Template() string
}
