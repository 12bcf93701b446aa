package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/propertyops/property-alerts/internal/pkg/application/alerts"
	"github.com/propertyops/property-alerts/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	DefaultGenerateInterval = 15 * time.Minute
	DefaultCleanupInterval  = 24 * time.Hour
)

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	done     chan bool
	watchers []watcher
}

type watcher interface {
	Watch(ctx context.Context) error
}

func New(svc alerts.AlertService, generateInterval, cleanupInterval time.Duration) Watchdog {
	if generateInterval <= 0 {
		generateInterval = DefaultGenerateInterval
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	return &watchdogImpl{
		done: make(chan bool),
		watchers: []watcher{
			&generateWatcher{svc: svc, interval: generateInterval},
			&cleanupWatcher{svc: svc, interval: cleanupInterval},
		},
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.done <- true
}

func (w *watchdogImpl) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logging.GetFromContext(ctx)

	for _, wtc := range w.watchers {
		go func(wtc watcher) {
			err := wtc.Watch(ctx)
			if err != nil {
				log.Error("watcher stopped", "err", err.Error())
			}
		}(wtc)
	}

	<-w.done
}

// generateWatcher runs the alert generation pass on a fixed interval.
// Passes never overlap, a tick that fires while the previous pass is
// still running is skipped.
type generateWatcher struct {
	svc      alerts.AlertService
	interval time.Duration

	mu      sync.Mutex
	running bool
}

func (w *generateWatcher) Watch(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// run once at startup so a restart does not delay alerting a full
	// interval
	w.pass(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !w.tryStart() {
				log.Warn("previous generation pass still running, skipping tick")
				continue
			}
			w.pass(ctx)
		}
	}
}

func (w *generateWatcher) tryStart() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return false
	}
	w.running = true
	return true
}

func (w *generateWatcher) pass(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	result := w.svc.GenerateAlerts(ctx, types.Unrestricted())

	for _, e := range result.Errors {
		log.Error("generation pass error", "err", e)
	}
}

type cleanupWatcher struct {
	svc      alerts.AlertService
	interval time.Duration
}

func (w *cleanupWatcher) Watch(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			result := w.svc.CleanupAlerts(ctx)
			for _, e := range result.Errors {
				log.Error("cleanup pass error", "err", e)
			}
		}
	}
}
