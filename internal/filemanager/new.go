package filemanager

import (
	"time"

	"github.com/nguyentantai21042004/audio-summary/internal/logger"
)

type implManager struct {
	logger logger.Logger
	now    func() time.Time
}

// New creates a new Manager instance
func New(log logger.Logger) Manager {
	return &implManager{
		logger: log,
		now:    time.Now,
	}
}
