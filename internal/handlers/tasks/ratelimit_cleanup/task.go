package ratelimit_cleanup

import (
	"context"
	"time"

	"cryptoshop/pkg/logger"
)

type Limiter interface {
	Cleanup() int
}

// RatelimitCleanup периодически выбрасывает истекшие окна лимитера,
// чтобы память не росла с количеством уникальных идентификаторов.
type RatelimitCleanup struct {
	log      logger.Logger
	limiter  Limiter
	interval time.Duration
}

func NewRatelimitCleanup(log logger.Logger, limiter Limiter, interval time.Duration) *RatelimitCleanup {
	return &RatelimitCleanup{
		log:      log,
		limiter:  limiter,
		interval: interval,
	}
}

func (r *RatelimitCleanup) TTL() time.Duration {
	return r.interval
}

func (r *RatelimitCleanup) Do(_ context.Context) error {
	removed := r.limiter.Cleanup()

	if removed > 0 {
		r.log.With(
			logger.NewField("expired_windows", removed),
		).Info("rate limit cleanup")
	}

	return nil
}

func (r *RatelimitCleanup) Info() string {
	return "rate limit cleanup"
}
