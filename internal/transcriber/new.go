package transcriber

import (
	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/pkg/gemini"
)

type implTranscriber struct {
	apiKey       string
	model        string
	newGenerator gemini.Factory
	logger       logger.Logger
}

// New creates a Transcriber backed by a Gemini multimodal model.
func New(cfg *config.Config, factory gemini.Factory, log logger.Logger) Transcriber {
	return &implTranscriber{
		apiKey:       cfg.Gemini.APIKey,
		model:        cfg.Gemini.Model,
		newGenerator: factory,
		logger:       log,
	}
}
