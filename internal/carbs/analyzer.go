package carbs

import (
	"context"
	"errors"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/activities"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=analyzer.go -destination=analyzer_mocks_test.go -package=carbs_test

type intakeRepo interface {
	ListAll(ctx context.Context) (map[int64]IntakeEntry, error)
	GetGuidelines(ctx context.Context) (*Guidelines, error)
}

type activitySource interface {
	ListRange(ctx context.Context, from, to time.Time) ([]activities.Activity, error)
}

// Analyzer joins mirrored activities with logged intake and computes the
// carb adherence roll-ups.
type Analyzer struct {
	repo       intakeRepo
	activities activitySource
}

func NewAnalyzer(repo intakeRepo, activitySrc activitySource) *Analyzer {
	return &Analyzer{
		repo:       repo,
		activities: activitySrc,
	}
}

// Tracking returns the per-activity records for eligible runs in [from, to].
// When supplementation tracking is disabled in the guidelines the result is
// empty, the runs are simply not eligible.
func (a *Analyzer) Tracking(ctx context.Context, from, to time.Time) (_ []TrackingRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.carbs.tracking")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	guidelines, err := a.repo.GetGuidelines(ctx)
	if err != nil {
		if errors.Is(err, ErrGuidelinesNotFound) {
			return nil, ErrNoGuidelines
		}
		return nil, err
	}
	if !guidelines.Enabled {
		return []TrackingRecord{}, nil
	}

	activityList, err := a.activities.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	intake, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	records, err := BuildTracking(activityList, intake, guidelines)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func (a *Analyzer) WeeklyStats(ctx context.Context, from, to time.Time) (_ map[string]WeeklyCarbStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.carbs.weeklyStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.Tracking(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return ComputeWeeklyStats(records), nil
}

func (a *Analyzer) CycleStats(ctx context.Context, from, to time.Time) (_ CycleCarbStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.carbs.cycleStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.Tracking(ctx, from, to)
	if err != nil {
		return EmptyCycleStats(), err
	}

	return ComputeCycleStats(records), nil
}
