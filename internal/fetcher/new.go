package fetcher

import (
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/pkg/executor"
)

// audioFormat is the encoding requested from the extraction tool.
const audioFormat = "mp3"

type implFetcher struct {
	binary   string
	allowed  []string
	executor executor.Executor
	logger   logger.Logger
	newID    func() string
}

// New creates a Fetcher that drives yt-dlp through exec.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		binary:   cfg.Fetcher.BinaryPath,
		allowed:  cfg.Fetcher.AllowedDomains,
		executor: exec,
		logger:   log,
		newID:    uuid.NewString,
	}
}
