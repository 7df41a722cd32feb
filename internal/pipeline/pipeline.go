package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
	"github.com/nguyentantai21042004/audio-summary/internal/transcriber"
)

// Run executes the stages strictly in order. The downloaded artifact, if
// any, is deleted exactly once before Run returns, on every path.
func (p *implPipeline) Run(ctx context.Context, url string) (*models.Result, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrURLRequired
	}

	startTime := time.Now()
	var audioPath string
	defer func() {
		if audioPath != "" {
			p.files.DeleteFile(ctx, audioPath)
		}
	}()

	p.logger.Info(ctx, "Processing URL: %s", url)

	p.logger.Info(ctx, "Step 1: Fetching metadata...")
	meta := p.fetcher.FetchMetadata(ctx, url)
	if meta.Unavailable {
		p.logger.Warn(ctx, "Metadata unavailable for %s, continuing with placeholder", url)
	}

	p.logger.Info(ctx, "Step 2: Downloading audio...")
	path, err := p.fetcher.FetchAudio(ctx, url, p.scratchDir)
	audioPath = path
	if err != nil {
		return nil, p.fail(ctx, StageDownloading, err)
	}
	p.logger.Info(ctx, "Audio downloaded to: %s", audioPath)

	p.logger.Info(ctx, "Step 3: Transcribing audio...")
	transcript, err := p.transcriber.Transcribe(ctx, audioPath, transcriber.MimeTypeFor(audioPath))
	if err != nil {
		return nil, p.fail(ctx, StageTranscribing, err)
	}
	p.logger.Info(ctx, "Transcription complete (%d chars)", len(transcript))

	p.logger.Info(ctx, "Step 4: Generating summary...")
	summary, err := p.summarizer.Summarize(ctx, transcript, meta)
	if err != nil {
		return nil, p.fail(ctx, StageSummarizing, err)
	}

	p.logger.Info(ctx, "Summary generated in %s", time.Since(startTime))

	return &models.Result{
		Metadata: models.VideoMetadata{
			Title:       meta.Title,
			Duration:    meta.Duration,
			Uploader:    meta.Uploader,
			Unavailable: meta.Unavailable,
		},
		Summary: summary,
	}, nil
}

func (p *implPipeline) fail(ctx context.Context, stage Stage, err error) error {
	p.logger.Error(ctx, "Processing error during %s: %v", stage, err)
	return stageErr(stage, err)
}
