// Package scheduler keeps frequently requested reports warm in the cache.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/couchcryptid/weather-cli/internal/domain"
	"github.com/couchcryptid/weather-cli/internal/observability"
)

// fetchTimeout bounds each location refresh.
const fetchTimeout = 30 * time.Second

// Refresher re-fetches a report and stores it.
type Refresher interface {
	Refresh(ctx context.Context, location string) (domain.Report, error)
}

// Warmer periodically refreshes a fixed set of locations.
type Warmer struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	locations []string
	interval  time.Duration
	metrics   *observability.Metrics
	logger    *slog.Logger
	ready     atomic.Bool
}

// NewWarmer creates a warmer. Nothing runs until Start.
func NewWarmer(refresher Refresher, locations []string, interval time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Warmer {
	return &Warmer{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
		locations: append([]string(nil), locations...),
		interval:  interval,
		metrics:   metrics,
		logger:    logger,
	}
}

// Start schedules the refresh job. The first run starts immediately.
func (w *Warmer) Start(ctx context.Context) error {
	if len(w.locations) == 0 {
		w.logger.Info("cache warmer: no locations configured; nothing to schedule")
		w.ready.Store(true)
		return nil
	}

	_, err := w.scheduler.Every(w.interval).SingletonMode().Do(func() {
		w.Run(ctx)
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	w.logger.Info("cache warmer started", "locations", len(w.locations), "interval", w.interval)
	return nil
}

// Run refreshes every location concurrently and waits for all of them.
func (w *Warmer) Run(ctx context.Context) {
	var wg sync.WaitGroup
	var failed atomic.Int32
	for _, loc := range w.locations {
		wg.Add(1)
		go func() {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			if _, err := w.refresher.Refresh(fetchCtx, loc); err != nil {
				failed.Add(1)
				w.logger.Warn("cache warmer: refresh failed", "location", loc, "error", err)
			}
		}()
	}
	wg.Wait()

	w.metrics.WarmRuns.Inc()
	w.ready.Store(true)
	w.logger.Debug("cache warmer: run complete", "locations", len(w.locations), "failed", failed.Load())
}

// Stop cancels future runs.
func (w *Warmer) Stop() {
	w.scheduler.Stop()
}

// CheckReadiness returns nil once the first warm run has completed.
func (w *Warmer) CheckReadiness(_ context.Context) error {
	if !w.ready.Load() {
		return errors.New("cache warmer has not completed a run yet")
	}
	return nil
}
