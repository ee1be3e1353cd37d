package workers

import (
	"context"

	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/location"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/news"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(ctx context.Context, feed *news.Feed, sampler *location.Sampler, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRateLimitCooldownWorker(ctx, feed, cfg.RateLimitCooldown, logger),
			NewLocationWorker(ctx, sampler, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
