package nutrition

import (
	"context"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=analyzer.go -destination=analyzer_mocks_test.go -package=nutrition_test

type trackingRepo interface {
	ListRange(ctx context.Context, from, to string) ([]DailyTrackingEntry, error)
}

// Analyzer fetches tracking entries for a date window and runs the pure
// aggregations over them.
type Analyzer struct {
	repo trackingRepo
}

func NewAnalyzer(repo trackingRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// WeeklyStats aggregates the 7 days starting at weekStart.
func (a *Analyzer) WeeklyStats(ctx context.Context, weekStart time.Time) (_ WeeklyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.nutrition.weeklyStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from := weekStart.Format(plan.DateLayout)
	to := weekStart.AddDate(0, 0, daysPerWeek-1).Format(plan.DateLayout)
	span.SetAttributes(attribute.String("from", from))
	span.SetAttributes(attribute.String("to", to))

	entries, err := a.repo.ListRange(ctx, from, to)
	if err != nil {
		return EmptyWeeklyStats(), err
	}

	return ComputeWeeklyStats(entries), nil
}

// CycleStats aggregates the whole window between the two ISO dates,
// typically plan start to race day.
func (a *Analyzer) CycleStats(ctx context.Context, startDate, endDate string) (_ CycleStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.nutrition.cycleStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return EmptyCycleStats(), err
	}

	return ComputeCycleStats(startDate, endDate, entries)
}

func (a *Analyzer) MealPatterns(ctx context.Context, startDate, endDate string) (_ MealPatternSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.nutrition.mealPatterns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return MealPatternSummary{SortedMeals: []MealPattern{}}, err
	}

	return ComputeMealPatterns(entries), nil
}
