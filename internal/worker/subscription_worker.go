// Package worker hosts background loops.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/subscription"
)

// SubscriptionWorker periodically re-verifies subscription status so that
// entitlements converge even when no status-change webhook arrives.
type SubscriptionWorker struct {
	service  subscription.Service
	interval time.Duration
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewSubscriptionWorker creates a new subscription refresh worker
func NewSubscriptionWorker(service subscription.Service, interval time.Duration) *SubscriptionWorker {
	return &SubscriptionWorker{
		service:  service,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start launches the refresh loop. The first refresh runs immediately.
func (w *SubscriptionWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the loop to exit and waits for it.
func (w *SubscriptionWorker) Stop() {
	w.once.Do(func() { close(w.shutdown) })
	w.wg.Wait()
}

func (w *SubscriptionWorker) run(ctx context.Context) {
	defer w.wg.Done()

	log := logger.FromContext(ctx)
	log.Info("Subscription worker started", "interval", w.interval.String())

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)
		case <-w.shutdown:
			log.Info("Subscription worker stopped")
			return
		case <-ctx.Done():
			log.Info("Subscription worker context cancelled")
			return
		}
	}
}

func (w *SubscriptionWorker) refresh(ctx context.Context) {
	if err := w.service.Refresh(ctx); err != nil {
		logger.FromContext(ctx).Error("Subscription refresh failed", "error", err)
	}
}
