package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/telemetry/metrics"
	"github.com/2beens/trainlog/internal/telemetry/tracing"
	"github.com/2beens/trainlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type analyticsService interface {
	Completion(ctx context.Context, f Filter) (*CompletionAnalyticsResponse, error)
	Progression(ctx context.Context, f Filter) (*ProgressionAnalyticsResponse, error)
	Heatmap(ctx context.Context, f Filter) (*HeatmapAnalyticsResponse, error)
}

type Handler struct {
	service        analyticsService
	cache          *ResponseCache
	metricsManager *metrics.Manager
}

// NewHandler creates the analytics handler. cache may be nil.
func NewHandler(service analyticsService, cache *ResponseCache, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/analytics/completion", handler.HandleCompletion).Methods("GET", "OPTIONS").Name("analytics-completion")
	r.HandleFunc("/api/analytics/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("analytics-progression")
	r.HandleFunc("/api/analytics/heatmap", handler.HandleHeatmap).Methods("GET", "OPTIONS").Name("analytics-heatmap")
}

func parseOptionalID(values url.Values, name string) (*int, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &id, nil
}

func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()
	f := Filter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}

	var err error
	if f.GoalID, err = parseOptionalID(q, "goal_id"); err != nil {
		return f, err
	}
	if f.ExerciseID, err = parseOptionalID(q, "exercise_id"); err != nil {
		return f, err
	}
	return f, nil
}

// cacheKey includes today, since a missing end date resolves to it.
func cacheKey(kind string, r *http.Request) string {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteString("|")
	sb.WriteString(dates.Format(dates.Today()))
	sb.WriteString("|")
	sb.WriteString(r.URL.Query().Encode())
	return sb.String()
}

func (handler *Handler) serve(
	w http.ResponseWriter,
	r *http.Request,
	kind string,
	compute func(ctx context.Context, f Filter) (any, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics."+kind)
	defer span.End()

	key := cacheKey(kind, r)
	if handler.cache != nil {
		if cached, ok := handler.cache.Get(key); ok {
			if handler.metricsManager != nil {
				handler.metricsManager.AnalyticsCacheHit()
			}
			pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
			return
		}
		if handler.metricsManager != nil {
			handler.metricsManager.AnalyticsCacheMiss()
		}
	}

	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	resp, err := compute(ctx, f)
	if err != nil {
		if IsValidationError(err) {
			log.Tracef("analytics %s, invalid filter: %s", kind, err)
			http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("analytics %s: %s", kind, err)
		http.Error(w, "error, failed to compute "+kind+" analytics", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal %s analytics: %s", kind, err)
		http.Error(w, "error, failed to compute "+kind+" analytics", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		handler.cache.Set(key, respJson)
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "completion", func(ctx context.Context, f Filter) (any, error) {
		return handler.service.Completion(ctx, f)
	})
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "progression", func(ctx context.Context, f Filter) (any, error) {
		return handler.service.Progression(ctx, f)
	})
}

func (handler *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "heatmap", func(ctx context.Context, f Filter) (any, error) {
		return handler.service.Heatmap(ctx, f)
	})
}
