package trainlog

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainlog/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainlog_test

type trainlogRepo interface {
	ListGoals(ctx context.Context) ([]Goal, error)
	AddGoal(ctx context.Context, name, color string) (*Goal, error)
	UpdateGoal(ctx context.Context, id int, update GoalUpdate) (*Goal, error)
	DeleteGoal(ctx context.Context, id int) error
	ReorderGoals(ctx context.Context, goalIDs []int) error

	ListExercises(ctx context.Context) ([]Exercise, error)
	AddExercise(ctx context.Context, name string) (*Exercise, error)
	RenameExercise(ctx context.Context, id int, name string) (*Exercise, error)
	DeleteExercise(ctx context.Context, id int) error

	LinkedExercises(ctx context.Context, goalID int) ([]Exercise, error)
	LinkExercise(ctx context.Context, goalID, exerciseID int) (*GoalExerciseLink, error)
	UnlinkExercise(ctx context.Context, goalID, exerciseID int) error

	GoalsWithLogs(ctx context.Context, start, end time.Time) ([]GoalWithLogs, error)
	UpsertLog(ctx context.Context, toggle ToggleLog) error
	DeleteLog(ctx context.Context, goalID int, date time.Time) error
	ExerciseHistory(ctx context.Context, exerciseID int) (*ExerciseHistory, error)
	LastExercise(ctx context.Context, goalID int) (*int, error)
	ExerciseWeightLogs(ctx context.Context, exerciseID int) ([]WeightLog, error)
}

// cacheInvalidator is notified after every successful write.
type cacheInvalidator interface {
	Invalidate()
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	repo           trainlogRepo
	invalidator    cacheInvalidator
	metricsManager *metrics.Manager
	now            func() time.Time
}

// NewHandler creates the trainlog handler. invalidator may be nil.
func NewHandler(repo trainlogRepo, invalidator cacheInvalidator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		invalidator:    invalidator,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the clock used to resolve "today".
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

// SetupRoutes registers all goal, exercise and log routes. writeLimiter,
// when set, wraps the log toggle routes.
func (handler *Handler) SetupRoutes(r *mux.Router, writeLimiter mux.MiddlewareFunc) {
	r.HandleFunc("/api/goals", handler.HandleListGoals).Methods("GET", "OPTIONS").Name("goals-list")
	r.HandleFunc("/api/goals", handler.HandleAddGoal).Methods("POST", "OPTIONS").Name("goals-add")
	r.HandleFunc("/api/goals/order", handler.HandleReorderGoals).Methods("PUT", "OPTIONS").Name("goals-reorder")
	r.HandleFunc("/api/goals/{id}", handler.HandleUpdateGoal).Methods("PATCH", "OPTIONS").Name("goals-update")
	r.HandleFunc("/api/goals/{id}", handler.HandleDeleteGoal).Methods("DELETE", "OPTIONS").Name("goals-delete")
	r.HandleFunc("/api/goals/{id}/exercises", handler.HandleLinkedExercises).Methods("GET", "OPTIONS").Name("links-list")
	r.HandleFunc("/api/goals/{id}/exercises", handler.HandleLinkExercise).Methods("POST", "OPTIONS").Name("links-add")
	r.HandleFunc("/api/goals/{id}/exercises/{exerciseId}", handler.HandleUnlinkExercise).Methods("DELETE", "OPTIONS").Name("links-delete")

	r.HandleFunc("/api/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("exercises-list")
	r.HandleFunc("/api/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("exercises-add")
	r.HandleFunc("/api/exercises/{id}", handler.HandleRenameExercise).Methods("PATCH", "OPTIONS").Name("exercises-rename")
	r.HandleFunc("/api/exercises/{id}", handler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("exercises-delete")
	r.HandleFunc("/api/exercises/{id}/stats", handler.HandleExerciseStats).Methods("GET", "OPTIONS").Name("exercises-stats")

	r.HandleFunc("/api/logs", handler.HandleLogs).Methods("GET", "OPTIONS").Name("logs")
	r.HandleFunc("/api/logs/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("logs-history")
	r.HandleFunc("/api/logs/last-exercise", handler.HandleLastExercise).Methods("GET", "OPTIONS").Name("logs-last-exercise")

	var upsert, del http.Handler = http.HandlerFunc(handler.HandleUpsertLog), http.HandlerFunc(handler.HandleDeleteLog)
	if writeLimiter != nil {
		upsert, del = writeLimiter(upsert), writeLimiter(del)
	}
	r.Handle("/api/logs/toggle", upsert).Methods("POST", "OPTIONS").Name("logs-toggle-upsert")
	r.Handle("/api/logs/toggle", del).Methods("DELETE", "OPTIONS").Name("logs-toggle-delete")
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (handler *Handler) logMutated(kind string) {
	if handler.invalidator != nil {
		handler.invalidator.Invalidate()
	}
	if handler.metricsManager != nil {
		handler.metricsManager.LogMutation(kind)
	}
}
