// Package overview assembles the cycle dashboard: calendar position,
// cycle-wide nutrition and fueling stats, and the workout-adaptation hints
// derived from them.
package overview

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/carbs"
	"github.com/wandersoncferreira/marathon-tracker/internal/nutrition"
	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"
	"github.com/wandersoncferreira/marathon-tracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=overview_test

type nutritionAnalyzer interface {
	CycleStats(ctx context.Context, startDate, endDate string) (nutrition.CycleStats, error)
}

type carbsAnalyzer interface {
	CycleStats(ctx context.Context, from, to time.Time) (carbs.CycleCarbStats, error)
}

type PlanOverview struct {
	StartDate   string `json:"startDate"`
	RaceDate    string `json:"raceDate"`
	TotalDays   int    `json:"totalDays"`
	DaysToRace  int    `json:"daysToRace"`
	CurrentWeek string `json:"currentWeek"`
}

type AdviceResponse struct {
	Advice    []string             `json:"advice"`
	Nutrition nutrition.CycleStats `json:"nutrition"`
	Carbs     carbs.CycleCarbStats `json:"carbs"`
}

type Handler struct {
	nutrition nutritionAnalyzer
	carbs     carbsAnalyzer
	calendar  *plan.Calendar
	nowFunc   func() time.Time
}

func NewHandler(
	nutritionAnlz nutritionAnalyzer,
	carbsAnlz carbsAnalyzer,
	calendar *plan.Calendar,
) *Handler {
	return &Handler{
		nutrition: nutritionAnlz,
		carbs:     carbsAnlz,
		calendar:  calendar,
		nowFunc:   time.Now,
	}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.overview.plan")
	defer span.End()

	now := handler.nowFunc().UTC()
	respJson, err := json.Marshal(PlanOverview{
		StartDate:   handler.calendar.StartDateISO(),
		RaceDate:    handler.calendar.RaceDateISO(),
		TotalDays:   handler.calendar.TotalDays(),
		DaysToRace:  handler.calendar.DaysToRace(now),
		CurrentWeek: plan.WeekStart(now).Format(plan.DateLayout),
	})
	if err != nil {
		log.Errorf("failed to marshal plan overview: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// HandleAdvice grades the whole cycle and derives training hints. Either
// aggregation failing degrades to its empty stats, the hints still come out.
func (handler *Handler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.overview.advice")
	defer span.End()

	nutritionStats, err := handler.nutrition.CycleStats(
		ctx, handler.calendar.StartDateISO(), handler.calendar.RaceDateISO(),
	)
	if err != nil {
		log.Errorf("advice, cycle nutrition stats failed, using empty stats: %s", err)
		nutritionStats = nutrition.EmptyCycleStats()
	}

	carbStats, err := handler.carbs.CycleStats(
		ctx, handler.calendar.StartDate, handler.calendar.RaceDate.Add(24*time.Hour-time.Nanosecond),
	)
	if err != nil {
		log.Errorf("advice, cycle carb stats failed, using empty stats: %s", err)
		carbStats = carbs.EmptyCycleStats()
	}

	advice := plan.Advice(plan.AdviceInput{
		AvgDailyRating:      nutritionStats.AverageRating,
		AdherencePercentage: nutritionStats.AdherencePercentage,
		CarbCompliance:      carbStats.CompliancePercentage,
		CarbTracking:        carbStats.TrackingPercentage,
		DaysToRace:          handler.calendar.DaysToRace(handler.nowFunc().UTC()),
	})

	respJson, err := json.Marshal(AdviceResponse{
		Advice:    advice,
		Nutrition: nutritionStats,
		Carbs:     carbStats,
	})
	if err != nil {
		log.Errorf("failed to marshal advice response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
