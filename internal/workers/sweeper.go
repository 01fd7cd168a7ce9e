package workers

import (
	"context"
	"time"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/ratelimit"
)

// sweepWorker periodically drops expired rate-limit buckets so the limiter's
// map does not grow without bound.
type sweepWorker struct {
	ctx      context.Context
	limiter  *ratelimit.Limiter
	interval time.Duration
	logger   *logger.Logger
}

// NewSweepWorker creates a worker that calls the limiter's Sweep on every
// tick until ctx is cancelled.
func NewSweepWorker(ctx context.Context, limiter *ratelimit.Limiter, interval time.Duration, logger *logger.Logger) Worker {
	return &sweepWorker{
		ctx:      ctx,
		limiter:  limiter,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. The sweep loop runs in its own goroutine.
func (w *sweepWorker) Run() {
	go w.loop()
}

func (w *sweepWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Debug().Msg("rate-limit sweeper stopped")
			return
		case <-ticker.C:
			removed := w.limiter.Sweep()
			if removed > 0 {
				w.logger.Debug().Int("removed", removed).Int("remaining", w.limiter.Size()).Msg("rate-limit buckets swept")
			}
		}
	}
}
