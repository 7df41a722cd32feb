package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Generator sends contents to a Gemini model and returns the concatenated text.
type Generator interface {
	Generate(ctx context.Context, model string, contents []*genai.Content) (string, error)
}

// Factory builds a Generator for an API key. Callers construct a Generator
// per call so a rotated key takes effect without a restart.
type Factory func(ctx context.Context, apiKey string) (Generator, error)
