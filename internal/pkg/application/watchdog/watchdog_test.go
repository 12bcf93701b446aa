package watchdog

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/propertyops/property-alerts/internal/pkg/application/alerts"
	"github.com/propertyops/property-alerts/pkg/types"
)

func TestGenerateWatcherRunsPassAtStartup(t *testing.T) {
	is, ctx := testSetup(t)

	svc := &alerts.AlertServiceMock{
		GenerateAlertsFunc: func(ctx context.Context, vc types.VisibilityContext) types.PassResult {
			return types.PassResult{}
		},
	}

	w := &generateWatcher{svc: svc, interval: time.Hour}

	ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	go w.Watch(ctx)
	<-ctx.Done()

	is.Equal(1, len(svc.GenerateAlertsCalls()))
	is.True(svc.GenerateAlertsCalls()[0].Vc.Unrestricted)
}

func TestGenerateWatcherTicks(t *testing.T) {
	is, ctx := testSetup(t)

	svc := &alerts.AlertServiceMock{
		GenerateAlertsFunc: func(ctx context.Context, vc types.VisibilityContext) types.PassResult {
			return types.PassResult{}
		},
	}

	w := &generateWatcher{svc: svc, interval: 20 * time.Millisecond}

	ctx, cancel := context.WithTimeout(ctx, 110*time.Millisecond)
	defer cancel()

	go w.Watch(ctx)
	<-ctx.Done()

	is.True(len(svc.GenerateAlertsCalls()) > 2)
}

func TestGenerateWatcherSkipsOverlappingPasses(t *testing.T) {
	is, _ := testSetup(t)

	w := &generateWatcher{interval: time.Hour}

	is.True(w.tryStart())
	is.True(!w.tryStart())

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	is.True(w.tryStart())
}

func TestCleanupWatcherTicks(t *testing.T) {
	is, ctx := testSetup(t)

	svc := &alerts.AlertServiceMock{
		CleanupAlertsFunc: func(ctx context.Context) types.CleanupResult {
			return types.CleanupResult{}
		},
	}

	w := &cleanupWatcher{svc: svc, interval: 20 * time.Millisecond}

	ctx, cancel := context.WithTimeout(ctx, 110*time.Millisecond)
	defer cancel()

	go w.Watch(ctx)
	<-ctx.Done()

	is.True(len(svc.CleanupAlertsCalls()) > 2)
}

func testSetup(t *testing.T) (*is.I, context.Context) {
	return is.New(t), context.Background()
}
