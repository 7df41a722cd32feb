package fetcher

import (
	"context"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

// Fetcher resolves clip metadata and extracts its audio track.
type Fetcher interface {
	// FetchMetadata never fails; lookup errors yield placeholder metadata.
	FetchMetadata(ctx context.Context, url string) models.VideoMetadata
	// FetchAudio writes one audio file into outputDir and returns its path.
	FetchAudio(ctx context.Context, url, outputDir string) (string, error)
}
