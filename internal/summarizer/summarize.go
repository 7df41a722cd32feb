package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
	"github.com/nguyentantai21042004/audio-summary/pkg/gemini"
	"google.golang.org/genai"
)

// ErrSummarizationFailed wraps every failure past the credential check.
var ErrSummarizationFailed = errors.New("Failed to generate summary")

// Summarize sends the composed prompt to Gemini and enforces the character
// ceiling locally on the answer.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, meta models.VideoMetadata) (string, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return "", gemini.ErrMissingAPIKey
	}

	gen, err := s.newGenerator(ctx, s.apiKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarizationFailed, err)
	}

	prompt := buildPrompt(s.prompt.Template(), s.maxChars, meta.Title, transcript)

	summary, err := gen.Generate(ctx, s.model, genai.Text(prompt))
	if err != nil {
		s.logger.Error(ctx, "Summarization error: %v", err)
		return "", fmt.Errorf("%w: %w", ErrSummarizationFailed, err)
	}

	if truncated := Truncate(summary, s.maxChars); len(truncated) != len(summary) {
		s.logger.Warn(ctx, "Summary exceeded %d characters, truncated", s.maxChars)
		summary = truncated
	}

	return summary, nil
}

func buildPrompt(template string, maxChars int, title, transcript string) string {
	var b strings.Builder

	b.WriteString(template)
	b.WriteString("\n\n")
	if maxChars > 0 {
		fmt.Fprintf(&b, "IMPORTANT: Your entire response MUST be under %d characters. Be concise.\n\n", maxChars)
	}
	if title != "" {
		fmt.Fprintf(&b, "Video Title: %s\n", title)
	}
	b.WriteString("Transcript:\n")
	b.WriteString(transcript)

	return b.String()
}
