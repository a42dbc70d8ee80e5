package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/metrics"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"
	"github.com/wandersoncferreira/marathon-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	Save(ctx context.Context, entry DailyTrackingEntry) error
	SaveAll(ctx context.Context, entries []DailyTrackingEntry) error
	GetByDate(ctx context.Context, date string) (*DailyTrackingEntry, error)
	ListRange(ctx context.Context, from, to string) ([]DailyTrackingEntry, error)
	GetGoals(ctx context.Context) (*Goals, error)
	SaveGoals(ctx context.Context, goals Goals) error
}

type statsAnalyzer interface {
	WeeklyStats(ctx context.Context, weekStart time.Time) (WeeklyStats, error)
	CycleStats(ctx context.Context, startDate, endDate string) (CycleStats, error)
	MealPatterns(ctx context.Context, startDate, endDate string) (MealPatternSummary, error)
}

type Handler struct {
	repo     nutritionRepo
	analyzer statsAnalyzer
	calendar *plan.Calendar
	metrics  *metrics.Manager
	nowFunc  func() time.Time
}

func NewHandler(
	repo nutritionRepo,
	analyzer statsAnalyzer,
	calendar *plan.Calendar,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
		calendar: calendar,
		metrics:  metricsManager,
		nowFunc:  time.Now,
	}
}

// HandleSave stores a full day of tracking, replacing any previous record
// for that date. The write timestamp is always assigned here.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.save")
	defer span.End()

	var entry DailyTrackingEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Warnf("save tracking entry, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateEntry(entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry.Timestamp = handler.nowFunc().UTC()
	if entry.Adherence == "" {
		entry.Adherence = AdherenceNotSet
	}

	if err := handler.repo.Save(ctx, entry); err != nil {
		log.Errorf("failed to save tracking entry for %s: %s", entry.Date, err)
		http.Error(w, "failed to save tracking entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterTrackingSaves.Inc()

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal saved entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

// HandleSaveAll bulk-imports tracking entries, e.g. when restoring an export.
// Each entry is validated up front, one bad entry rejects the whole batch.
func (handler *Handler) HandleSaveAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.saveAll")
	defer span.End()

	var entries []DailyTrackingEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		log.Warnf("bulk save tracking entries, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(entries) == 0 {
		http.Error(w, "no entries given", http.StatusBadRequest)
		return
	}

	now := handler.nowFunc().UTC()
	for i := range entries {
		if err := validateEntry(entries[i]); err != nil {
			http.Error(w, fmt.Sprintf("entry %s: %s", entries[i].Date, err), http.StatusBadRequest)
			return
		}
		entries[i].Timestamp = now
		if entries[i].Adherence == "" {
			entries[i].Adherence = AdherenceNotSet
		}
	}

	if err := handler.repo.SaveAll(ctx, entries); err != nil {
		log.Errorf("failed to bulk save %d tracking entries: %s", len(entries), err)
		http.Error(w, "failed to save tracking entries", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterTrackingSaves.Add(float64(len(entries)))

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"saved": %d}`, len(entries)))
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getDay")
	defer span.End()

	date := mux.Vars(r)["date"]
	if _, err := time.ParseInLocation(plan.DateLayout, date, time.UTC); err != nil {
		http.Error(w, "invalid date (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get tracking entry for %s: %s", date, err)
		http.Error(w, "failed to get tracking entry", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.list")
	defer span.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if _, err := time.ParseInLocation(plan.DateLayout, from, time.UTC); err != nil {
		http.Error(w, "invalid from date (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if _, err := time.ParseInLocation(plan.DateLayout, to, time.UTC); err != nil {
		http.Error(w, "invalid to date (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.ListRange(ctx, from, to)
	if err != nil {
		log.Errorf("failed to list tracking entries: %s", err)
		http.Error(w, "failed to list tracking entries", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal entries: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// HandleWeeklyStats aggregates the week given via ?weekStart=YYYY-MM-DD, or
// the current week when absent. Aggregation problems degrade to the empty
// stats object, the dashboard must never break over them.
func (handler *Handler) HandleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.weeklyStats")
	defer span.End()

	weekStart := plan.WeekStart(handler.nowFunc().UTC())
	if weekStartParam := r.URL.Query().Get("weekStart"); weekStartParam != "" {
		parsed, err := time.ParseInLocation(plan.DateLayout, weekStartParam, time.UTC)
		if err != nil {
			http.Error(w, "invalid weekStart date (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		weekStart = plan.WeekStart(parsed)
	}

	stats, err := handler.analyzer.WeeklyStats(ctx, weekStart)
	if err != nil {
		log.Errorf("weekly nutrition stats failed, serving empty stats: %s", err)
		stats = EmptyWeeklyStats()
	}

	writeStats(w, stats)
}

func (handler *Handler) HandleCycleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.cycleStats")
	defer span.End()

	stats, err := handler.analyzer.CycleStats(
		ctx, handler.calendar.StartDateISO(), handler.calendar.RaceDateISO(),
	)
	if err != nil {
		log.Errorf("cycle nutrition stats failed, serving empty stats: %s", err)
		stats = EmptyCycleStats()
	}

	writeStats(w, stats)
}

func (handler *Handler) HandleMealPatterns(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.mealPatterns")
	defer span.End()

	summary, err := handler.analyzer.MealPatterns(
		ctx, handler.calendar.StartDateISO(), handler.calendar.RaceDateISO(),
	)
	if err != nil {
		log.Errorf("meal pattern analysis failed, serving empty summary: %s", err)
		summary = MealPatternSummary{SortedMeals: []MealPattern{}}
	}

	writeStats(w, summary)
}

func (handler *Handler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getGoals")
	defer span.End()

	goals, err := handler.repo.GetGoals(ctx)
	if err != nil {
		if errors.Is(err, ErrGoalsNotSet) {
			http.Error(w, "goals not set", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get nutrition goals: %s", err)
		http.Error(w, "failed to get nutrition goals", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSaveGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.saveGoals")
	defer span.End()

	var goals Goals
	if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
		log.Warnf("save goals, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	goals.Timestamp = handler.nowFunc().UTC()

	if err := handler.repo.SaveGoals(ctx, goals); err != nil {
		log.Errorf("failed to save nutrition goals: %s", err)
		http.Error(w, "failed to save nutrition goals", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func validateEntry(entry DailyTrackingEntry) error {
	if _, err := time.ParseInLocation(plan.DateLayout, entry.Date, time.UTC); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", entry.Date)
	}
	if entry.Rating < 0 || entry.Rating > 10 {
		return fmt.Errorf("rating %d out of range [0, 10]", entry.Rating)
	}
	if entry.PlannedCalories < 0 || entry.ActualCalories < 0 {
		return errors.New("calories must be non-negative")
	}
	for meal, mealRating := range entry.Meals {
		if mealRating.Rating < 0 || mealRating.Rating > 10 {
			return fmt.Errorf("rating %d for meal %q out of range [0, 10]", mealRating.Rating, meal)
		}
	}
	return nil
}

func writeStats(w http.ResponseWriter, stats any) {
	respJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
