package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inkwell-cms/inkwell/domain"
)

// recountWorker periodically refreshes the per-state comment tally so the
// dashboard badge stays warm even when no moderation traffic invalidates
// the cache.
type recountWorker struct {
	counter  domain.CommentCounter
	interval time.Duration
}

func NewRecountWorker(counter domain.CommentCounter, interval time.Duration) *recountWorker {
	return &recountWorker{
		counter:  counter,
		interval: interval,
	}
}

func (w *recountWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.counter.CountByState(ctx); err != nil {
				logrus.Warnf("RecountWorker: failed to refresh comment counts: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down RecountWorker")
			return
		}
	}
}
