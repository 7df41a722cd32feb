package main

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/fetcher"
	"github.com/nguyentantai21042004/audio-summary/internal/filemanager"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summary/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summary/internal/transcriber"
	"github.com/nguyentantai21042004/audio-summary/pkg/executor"
	"github.com/nguyentantai21042004/audio-summary/pkg/gemini"
)

// app holds the wired production collaborators.
type app struct {
	files      filemanager.Manager
	promptFile *summarizer.FilePrompt
	pipeline   pipeline.Pipeline
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	files := filemanager.New(log)
	if err := files.EnsureDirectory(cfg.Paths.Temp); err != nil {
		return nil, fmt.Errorf("create scratch directory %s: %w", cfg.Paths.Temp, err)
	}

	a := &app{files: files}

	var prompt summarizer.PromptSource
	if cfg.Summary.PromptFile != "" {
		a.promptFile = summarizer.NewFilePrompt(ctx, cfg.Summary.PromptFile, cfg.Summary.Prompt, log)
		prompt = a.promptFile
	}

	exec := executor.New()
	a.pipeline = pipeline.New(
		cfg.Paths.Temp,
		fetcher.New(cfg, exec, log),
		transcriber.New(cfg, gemini.New, log),
		summarizer.New(cfg, prompt, gemini.New, log),
		files,
		log,
	)

	if cfg.Gemini.APIKey == "" {
		log.Warn(ctx, "GOOGLE_AI_API_KEY is not set, transcription requests will fail")
	}

	return a, nil
}
