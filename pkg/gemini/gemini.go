package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is the configuration error raised when no credential is set.
var ErrMissingAPIKey = errors.New("GOOGLE_AI_API_KEY is not set")

// ErrEmptyResponse is returned when the model answers without any text part.
var ErrEmptyResponse = errors.New("empty response from Gemini")

type implGenerator struct {
	client *genai.Client
}

// New creates a Generator backed by the Gemini API.
func New(ctx context.Context, apiKey string) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implGenerator{client: client}, nil
}

func (g *implGenerator) Generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return TextFrom(result)
}

// TextFrom joins the text parts of the first candidate.
func TextFrom(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}
