package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/plan"
	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"
	"github.com/wandersoncferreira/marathon-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activities_test

type activitiesRepo interface {
	Get(ctx context.Context, id int64) (*Activity, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Activity, error)
}

type activitySyncer interface {
	SyncNow(ctx context.Context) (int, error)
}

type ActivityView struct {
	Activity
	Zone plan.PaceZone `json:"zone,omitempty"`
}

type ListActivitiesResponse struct {
	Activities []ActivityView `json:"activities"`
	Total      int            `json:"total"`
}

type SyncResponse struct {
	Synced int `json:"synced"`
}

type Handler struct {
	repo   activitiesRepo
	syncer activitySyncer
	zones  *plan.PaceZones
}

func NewHandler(repo activitiesRepo, syncer activitySyncer, zones *plan.PaceZones) *Handler {
	return &Handler{
		repo:   repo,
		syncer: syncer,
		zones:  zones,
	}
}

// HandleList returns the locally mirrored activities for ?from=YYYY-MM-DD&to=YYYY-MM-DD,
// each run annotated with its pace zone.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	from, err := time.ParseInLocation(plan.DateLayout, r.URL.Query().Get("from"), time.UTC)
	if err != nil {
		http.Error(w, "invalid from date (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	to, err := time.ParseInLocation(plan.DateLayout, r.URL.Query().Get("to"), time.UTC)
	if err != nil {
		http.Error(w, "invalid to date (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	// include the whole "to" day
	to = to.Add(24*time.Hour - time.Nanosecond)

	activities, err := handler.repo.ListRange(ctx, from, to)
	if err != nil {
		log.Errorf("failed to list activities: %s", err)
		http.Error(w, "failed to list activities", http.StatusInternalServerError)
		return
	}

	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		view := ActivityView{Activity: a}
		if a.IsRun() && a.AvgSpeed > 0 && handler.zones != nil {
			view.Zone = handler.zones.ClassifyPace(a.AvgSpeed)
		}
		views = append(views, view)
	}

	respJson, err := json.Marshal(ListActivitiesResponse{
		Activities: views,
		Total:      len(views),
	})
	if err != nil {
		log.Errorf("failed to marshal activities response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	activity, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrActivityNotFound) {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get activity %d: %s", id, err)
		http.Error(w, "failed to get activity", http.StatusInternalServerError)
		return
	}

	view := ActivityView{Activity: *activity}
	if activity.IsRun() && activity.AvgSpeed > 0 && handler.zones != nil {
		view.Zone = handler.zones.ClassifyPace(activity.AvgSpeed)
	}

	respJson, err := json.Marshal(view)
	if err != nil {
		log.Errorf("failed to marshal activity response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.sync")
	defer span.End()

	synced, err := handler.syncer.SyncNow(ctx)
	if err != nil {
		log.Errorf("manual activity sync failed: %s", err)
		http.Error(w, "activity sync failed", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(SyncResponse{Synced: synced})
	if err != nil {
		log.Errorf("failed to marshal sync response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
