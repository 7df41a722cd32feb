package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

// videoInfo is the subset of yt-dlp's info JSON we read.
type videoInfo struct {
	Title       string  `json:"title"`
	Duration    float64 `json:"duration"`
	Uploader    string  `json:"uploader"`
	Description string  `json:"description"`
}

// FetchMetadata asks yt-dlp for the clip's info JSON without downloading it.
func (f *implFetcher) FetchMetadata(ctx context.Context, url string) models.VideoMetadata {
	info, err := f.lookupInfo(ctx, url)
	if err != nil {
		f.logger.Warn(ctx, "Error fetching metadata for %s: %v", url, err)
		return models.PlaceholderMetadata()
	}

	meta := models.VideoMetadata{
		Title:       info.Title,
		Duration:    info.Duration,
		Uploader:    info.Uploader,
		Description: info.Description,
	}
	if strings.TrimSpace(meta.Title) == "" {
		meta.Title = models.UnknownTitle
	}
	return meta
}

func (f *implFetcher) lookupInfo(ctx context.Context, url string) (*videoInfo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	args := []string{
		"--dump-single-json",
		"--skip-download",
		"--no-playlist",
		"--no-warnings",
		url,
	}

	out, err := f.executor.Execute(ctx, f.binary, args...)
	if err != nil {
		return nil, err
	}

	var info videoInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("parse video info: %w", err)
	}
	return &info, nil
}
