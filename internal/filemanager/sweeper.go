package filemanager

import (
	"context"
	"sync"
	"time"

	"github.com/nguyentantai21042004/audio-summary/internal/logger"
)

// Sweeper runs SweepExpired on a fixed interval until its context is
// cancelled or Stop is called.
type Sweeper struct {
	manager  Manager
	logger   logger.Logger
	dir      string
	interval time.Duration
	maxAge   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a Sweeper for dir.
func NewSweeper(m Manager, log logger.Logger, dir string, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		manager:  m,
		logger:   log,
		dir:      dir,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Start launches the sweep loop in a goroutine. Calling Start twice without
// Stop is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
}

// Stop cancels the loop and waits for an in-progress sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info(ctx, "Sweeper started: dir=%s interval=%s max_age=%s", s.dir, s.interval, s.maxAge)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Sweeper stopped")
			return
		case <-ticker.C:
			if n := s.manager.SweepExpired(ctx, s.dir, s.maxAge); n > 0 {
				s.logger.Info(ctx, "Sweep removed %d file(s) from %s", n, s.dir)
			}
		}
	}
}
