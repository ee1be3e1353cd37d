package workers

import (
	"context"
	"time"

	"github.com/notesapp/pocketnotes/internal/logger"
)

const defaultRateLimitCooldown = 5 * time.Minute

// rateLimitedFeed is the slice of the news feed the cooldown worker needs.
type rateLimitedFeed interface {
	RateLimited() bool
	ResetRateLimit()
}

// RateLimitCooldownWorker watches the news feed's rate-limit latch and
// clears it once it has been set for the configured cooldown window, so
// pagination resumes without user intervention.
type RateLimitCooldownWorker struct {
	ctx      context.Context
	feed     rateLimitedFeed
	cooldown time.Duration
	logger   *logger.Logger
}

func NewRateLimitCooldownWorker(ctx context.Context, feed rateLimitedFeed, cooldown time.Duration, logger *logger.Logger) *RateLimitCooldownWorker {
	if cooldown <= 0 {
		cooldown = defaultRateLimitCooldown
	}

	return &RateLimitCooldownWorker{
		ctx:      ctx,
		feed:     feed,
		cooldown: cooldown,
		logger:   logger,
	}
}

func (w *RateLimitCooldownWorker) Run() {
	go w.loop()
}

func (w *RateLimitCooldownWorker) loop() {
	interval := w.cooldown / 10
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var limitedSince time.Time

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !w.feed.RateLimited() {
				limitedSince = time.Time{}
				continue
			}

			if limitedSince.IsZero() {
				limitedSince = time.Now()
				continue
			}

			if time.Since(limitedSince) >= w.cooldown {
				w.feed.ResetRateLimit()
				limitedSince = time.Time{}
				w.logger.Info().Str("func", "RateLimitCooldownWorker.loop").Dur("cooldown", w.cooldown).Msg("news rate limit cleared after cooldown")
			}
		}
	}
}
