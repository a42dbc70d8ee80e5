package activities

import (
	"context"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/metrics"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=syncer_mocks_test.go -package=activities_test

type activitySource interface {
	ListActivities(ctx context.Context, from, to time.Time) ([]Activity, error)
}

type activityStore interface {
	UpsertAll(ctx context.Context, activities []Activity) error
}

// Syncer mirrors platform activities into the local store, on a fixed
// interval and on demand. A failed run is not retried, the next tick
// picks it up again.
type Syncer struct {
	source    activitySource
	store     activityStore
	cycleFrom time.Time
	metrics   *metrics.Manager
	nowFunc   func() time.Time
}

func NewSyncer(
	source activitySource,
	store activityStore,
	cycleFrom time.Time,
	metricsManager *metrics.Manager,
) *Syncer {
	return &Syncer{
		source:    source,
		store:     store,
		cycleFrom: cycleFrom,
		metrics:   metricsManager,
		nowFunc:   time.Now,
	}
}

// Run blocks, syncing every interval until the context is cancelled.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("activity syncer stopping ...")
			return
		case <-ticker.C:
			if _, err := s.SyncNow(ctx); err != nil {
				log.Errorf("activity sync failed: %s", err)
			}
		}
	}
}

// SyncNow fetches all cycle activities from the platform and upserts them
// locally, returning the number of mirrored activities.
func (s *Syncer) SyncNow(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activities.syncer.syncNow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	defer func(begin time.Time) {
		s.metrics.HistSyncDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	s.metrics.CounterSyncRuns.Inc()

	fetched, err := s.source.ListActivities(ctx, s.cycleFrom, s.nowFunc())
	if err != nil {
		return 0, err
	}

	if err := s.store.UpsertAll(ctx, fetched); err != nil {
		return 0, err
	}

	s.metrics.CounterActivitiesSynced.Add(float64(len(fetched)))
	span.SetAttributes(attribute.Int("synced", len(fetched)))
	log.Debugf("activity sync done, %d activities mirrored", len(fetched))

	return len(fetched), nil
}
