package carbs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/metrics"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"
	"github.com/wandersoncferreira/marathon-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=carbs_test

type carbsRepo interface {
	Save(ctx context.Context, entry IntakeEntry) error
	GetByActivity(ctx context.Context, activityID int64) (*IntakeEntry, error)
	GetGuidelines(ctx context.Context) (*Guidelines, error)
	SaveGuidelines(ctx context.Context, guidelines Guidelines) error
}

type carbsAnalyzer interface {
	Tracking(ctx context.Context, from, to time.Time) ([]TrackingRecord, error)
	WeeklyStats(ctx context.Context, from, to time.Time) (map[string]WeeklyCarbStats, error)
	CycleStats(ctx context.Context, from, to time.Time) (CycleCarbStats, error)
}

type Handler struct {
	repo     carbsRepo
	analyzer carbsAnalyzer
	calendar *plan.Calendar
	metrics  *metrics.Manager
	nowFunc  func() time.Time
}

func NewHandler(
	repo carbsRepo,
	analyzer carbsAnalyzer,
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

func (handler *Handler) HandleSaveIntake(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.saveIntake")
	defer span.End()

	var entry IntakeEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Warnf("save intake entry, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if entry.ActivityID <= 0 {
		http.Error(w, "activityId is required", http.StatusBadRequest)
		return
	}
	if entry.CarbGrams < 0 {
		http.Error(w, "carbGrams must be non-negative", http.StatusBadRequest)
		return
	}

	entry.Timestamp = handler.nowFunc().UTC()
	if err := handler.repo.Save(ctx, entry); err != nil {
		log.Errorf("failed to save intake entry for activity %d: %s", entry.ActivityID, err)
		http.Error(w, "failed to save intake entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterCarbEntries.Inc()

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal saved intake entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGetIntake(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.getIntake")
	defer span.End()

	activityID, err := strconv.ParseInt(mux.Vars(r)["activityId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.GetByActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, ErrIntakeNotFound) {
			http.Error(w, "intake entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get intake entry for activity %d: %s", activityID, err)
		http.Error(w, "failed to get intake entry", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal intake entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// HandleGetGuidelines serves the configured guidelines, or the built-in
// defaults when none were ever saved.
func (handler *Handler) HandleGetGuidelines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.getGuidelines")
	defer span.End()

	guidelines, err := handler.repo.GetGuidelines(ctx)
	if err != nil {
		if errors.Is(err, ErrGuidelinesNotFound) {
			defaults := DefaultGuidelines()
			guidelines = &defaults
		} else {
			log.Errorf("failed to get carb guidelines: %s", err)
			http.Error(w, "failed to get carb guidelines", http.StatusInternalServerError)
			return
		}
	}

	respJson, err := json.Marshal(guidelines)
	if err != nil {
		log.Errorf("failed to marshal guidelines: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSaveGuidelines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.saveGuidelines")
	defer span.End()

	var guidelines Guidelines
	if err := json.NewDecoder(r.Body).Decode(&guidelines); err != nil {
		log.Warnf("save guidelines, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if guidelines.CarbsPer30Min <= 0 {
		http.Error(w, "carbsPer30Min must be positive", http.StatusBadRequest)
		return
	}
	if guidelines.MinDurationMinutes < 0 {
		http.Error(w, "minDurationMinutes must be non-negative", http.StatusBadRequest)
		return
	}

	guidelines.Timestamp = handler.nowFunc().UTC()
	if err := handler.repo.SaveGuidelines(ctx, guidelines); err != nil {
		log.Errorf("failed to save carb guidelines: %s", err)
		http.Error(w, "failed to save carb guidelines", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(guidelines)
	if err != nil {
		log.Errorf("failed to marshal guidelines: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// HandleTracking lists the per-run records over the whole cycle, or over
// ?from&to when given.
func (handler *Handler) HandleTracking(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.tracking")
	defer span.End()

	from, to, err := handler.rangeBounds(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := handler.analyzer.Tracking(ctx, from, to)
	if err != nil {
		log.Errorf("carb tracking failed, serving empty list: %s", err)
		records = []TrackingRecord{}
	}

	respJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("failed to marshal tracking records: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.weeklyStats")
	defer span.End()

	from, to, err := handler.rangeBounds(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := handler.analyzer.WeeklyStats(ctx, from, to)
	if err != nil {
		log.Errorf("weekly carb stats failed, serving empty stats: %s", err)
		stats = map[string]WeeklyCarbStats{}
	}

	respJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal weekly carb stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleCycleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.carbs.cycleStats")
	defer span.End()

	from, to, err := handler.rangeBounds(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := handler.analyzer.CycleStats(ctx, from, to)
	if err != nil {
		log.Errorf("cycle carb stats failed, serving empty stats: %s", err)
		stats = EmptyCycleStats()
	}

	respJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal cycle carb stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// rangeBounds defaults to the full training cycle, including all of race day.
func (handler *Handler) rangeBounds(r *http.Request) (from, to time.Time, err error) {
	from = handler.calendar.StartDate
	to = handler.calendar.RaceDate.Add(24*time.Hour - time.Nanosecond)

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		from, err = time.ParseInLocation(plan.DateLayout, fromParam, time.UTC)
		if err != nil {
			return from, to, errors.New("invalid from date (expected YYYY-MM-DD)")
		}
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		to, err = time.ParseInLocation(plan.DateLayout, toParam, time.UTC)
		if err != nil {
			return from, to, errors.New("invalid to date (expected YYYY-MM-DD)")
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
