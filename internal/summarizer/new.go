package summarizer

import (
	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/pkg/gemini"
)

type implSummarizer struct {
	apiKey       string
	model        string
	maxChars     int
	prompt       PromptSource
	newGenerator gemini.Factory
	logger       logger.Logger
}

// New creates a Summarizer. A nil prompt falls back to cfg.Summary.Prompt.
func New(cfg *config.Config, prompt PromptSource, factory gemini.Factory, log logger.Logger) Summarizer {
	if prompt == nil {
		prompt = StaticPrompt(cfg.Summary.Prompt)
	}
	return &implSummarizer{
		apiKey:       cfg.Gemini.APIKey,
		model:        cfg.Gemini.Model,
		maxChars:     cfg.SummaryCap(),
		prompt:       prompt,
		newGenerator: factory,
		logger:       log,
	}
}
