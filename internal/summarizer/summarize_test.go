package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/internal/models"
	"github.com/nguyentantai21042004/audio-summary/pkg/gemini"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	prompt string
	text   string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.text, f.err
}

func newTestSummarizer(t *testing.T, apiKey string, maxChars int, gen *fakeGenerator) Summarizer {
	t.Helper()
	cfg := &config.Config{
		Gemini:  config.GeminiConfig{APIKey: apiKey},
		Summary: config.SummaryConfig{Prompt: "Summarize this.", MaxChars: maxChars},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	factory := func(ctx context.Context, key string) (gemini.Generator, error) {
		return gen, nil
	}
	return New(cfg, nil, factory, logger.Nop())
}

func TestSummarizeMissingAPIKey(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	s := newTestSummarizer(t, "", 0, gen)

	_, err := s.Summarize(context.Background(), "hello", models.VideoMetadata{})
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Errorf("Summarize() error = %v, want %v", err, gemini.ErrMissingAPIKey)
	}
	if gen.prompt != "" {
		t.Error("generator called without an API key")
	}
}

func TestSummarizePrompt(t *testing.T) {
	tests := []struct {
		name     string
		maxChars int
		title    string
		contains []string
		absent   []string
	}{
		{
			name:     "title and cap",
			maxChars: 0, // default ceiling
			title:    "Test",
			contains: []string{
				"Summarize this.\n\n",
				"IMPORTANT: Your entire response MUST be under 1950 characters. Be concise.",
				"Video Title: Test\nTranscript:\nhello world",
			},
		},
		{
			name:     "no title no cap",
			maxChars: -1,
			contains: []string{"Summarize this.\n\nTranscript:\nhello world"},
			absent:   []string{"IMPORTANT", "Video Title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: "# Summary"}
			s := newTestSummarizer(t, "key", tt.maxChars, gen)

			if _, err := s.Summarize(context.Background(), "hello world", models.VideoMetadata{Title: tt.title}); err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(gen.prompt, want) {
					t.Errorf("prompt %q missing %q", gen.prompt, want)
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(gen.prompt, bad) {
					t.Errorf("prompt %q should not contain %q", gen.prompt, bad)
				}
			}
			if !strings.HasSuffix(gen.prompt, "hello world") {
				t.Errorf("transcript not appended verbatim: %q", gen.prompt)
			}
		})
	}
}

func TestSummarizeEnforcesCeiling(t *testing.T) {
	long := "# Summary\n" + strings.Repeat("a", 20) + "\n" + strings.Repeat("b", 50)
	gen := &fakeGenerator{text: long}
	s := newTestSummarizer(t, "key", 40, gen)

	got, err := s.Summarize(context.Background(), "t", models.VideoMetadata{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	want := "# Summary\n" + strings.Repeat("a", 20)
	if got != want {
		t.Errorf("Summarize() = %q, want %q", got, want)
	}
}

func TestSummarizeWrapsFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	s := newTestSummarizer(t, "key", 0, gen)

	_, err := s.Summarize(context.Background(), "t", models.VideoMetadata{})
	if !errors.Is(err, ErrSummarizationFailed) {
		t.Fatalf("Summarize() error = %v, want %v", err, ErrSummarizationFailed)
	}
	if err.Error() != "Failed to generate summary: model overloaded" {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestSummarizeUsesPromptSource(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	cfg := &config.Config{Gemini: config.GeminiConfig{APIKey: "key"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	factory := func(ctx context.Context, key string) (gemini.Generator, error) { return gen, nil }
	s := New(cfg, StaticPrompt("Custom instruction"), factory, logger.Nop())

	if _, err := s.Summarize(context.Background(), "t", models.VideoMetadata{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(gen.prompt, "Custom instruction\n\n") {
		t.Errorf("prompt = %q, want custom instruction first", gen.prompt)
	}
}
