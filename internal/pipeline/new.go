package pipeline

import (
	"github.com/nguyentantai21042004/audio-summary/internal/fetcher"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summary/internal/transcriber"
)

type implPipeline struct {
	scratchDir  string
	fetcher     fetcher.Fetcher
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	files       FileRemover
	logger      logger.Logger
}

// New creates a Pipeline writing artifacts into scratchDir.
func New(scratchDir string, f fetcher.Fetcher, t transcriber.Transcriber, s summarizer.Summarizer, files FileRemover, log logger.Logger) Pipeline {
	return &implPipeline{
		scratchDir:  scratchDir,
		fetcher:     f,
		transcriber: t,
		summarizer:  s,
		files:       files,
		logger:      log,
	}
}
