package trainlog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/telemetry/tracing"
	"github.com/2beens/trainlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultVisibleDays = 7
	MaxVisibleDays     = 366
)

func parseDays(raw string) (int, error) {
	if raw == "" {
		return DefaultVisibleDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if days < 1 || days > MaxVisibleDays {
		return 0, errors.New("days out of range")
	}
	return days, nil
}

// Validate checks a toggle body: a valid goal and date, and weight/reps that
// are non-negative and only sent along with an exercise.
func (t ToggleLog) Validate() error {
	if t.GoalID <= 0 {
		return errors.New("goal_id is required")
	}
	if _, err := dates.Parse(t.Date); err != nil {
		return err
	}
	if t.ExerciseID != nil && *t.ExerciseID <= 0 {
		return errors.New("invalid exercise_id")
	}
	if t.ExerciseID == nil && (t.Weight != nil || t.Reps != nil) {
		return errors.New("weight and reps need an exercise_id")
	}
	if t.Weight != nil && *t.Weight < 0 {
		return errors.New("weight must not be negative")
	}
	if t.Reps != nil && *t.Reps < 0 {
		return errors.New("reps must not be negative")
	}
	return nil
}

// HandleLogs returns every goal with its logs for the last N days
// (today included).
func (handler *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.logs")
	defer span.End()

	days, err := parseDays(r.URL.Query().Get("days"))
	if err != nil {
		http.Error(w, "error, invalid days", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("days", days))

	end := dates.Truncate(handler.now())
	start := end.AddDate(0, 0, -(days - 1))

	goals, err := handler.repo.GoalsWithLogs(ctx, start, end)
	if err != nil {
		log.Errorf("goals with logs for %d days: %s", days, err)
		http.Error(w, "error, failed to fetch logs", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []GoalWithLogs{}
	}

	pkg.WriteJSON(w, LogsResponse{Goals: goals}, http.StatusOK)
}

func (handler *Handler) HandleUpsertLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.logs.upsert")
	defer span.End()

	var toggle ToggleLog
	if err := decodeJSON(r, &toggle); err != nil {
		log.Tracef("upsert log, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if err := toggle.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	err := handler.repo.UpsertLog(ctx, toggle)
	if errors.Is(err, ErrUnknownReference) {
		http.Error(w, "error, goal or exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("upsert log [goal %d, %s]: %s", toggle.GoalID, toggle.Date, err)
		http.Error(w, "error, failed to save log", http.StatusInternalServerError)
		return
	}

	handler.logMutated("upsert")
	pkg.WriteJSON(w, toggle, http.StatusOK)
}

// HandleDeleteLog is unconditional: deleting a log that does not exist
// succeeds as well.
func (handler *Handler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.logs.delete")
	defer span.End()

	goalID, ok := queryID(r, "goal_id")
	if !ok {
		http.Error(w, "error, goal_id is required", http.StatusBadRequest)
		return
	}
	date, err := dates.Parse(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteLog(ctx, goalID, date); err != nil {
		log.Errorf("delete log [goal %d, %s]: %s", goalID, dates.Format(date), err)
		http.Error(w, "error, failed to delete log", http.StatusInternalServerError)
		return
	}

	handler.logMutated("delete")
	pkg.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.logs.history")
	defer span.End()

	exerciseID, ok := queryID(r, "exercise_id")
	if !ok {
		http.Error(w, "error, exercise_id is required", http.StatusBadRequest)
		return
	}

	history, err := handler.repo.ExerciseHistory(ctx, exerciseID)
	if err != nil {
		log.Errorf("exercise %d history: %s", exerciseID, err)
		http.Error(w, "error, failed to fetch exercise history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleLastExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.logs.last_exercise")
	defer span.End()

	goalID, ok := queryID(r, "goal_id")
	if !ok {
		http.Error(w, "error, goal_id is required", http.StatusBadRequest)
		return
	}

	exerciseID, err := handler.repo.LastExercise(ctx, goalID)
	if err != nil {
		log.Errorf("last exercise of goal %d: %s", goalID, err)
		http.Error(w, "error, failed to fetch last exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, LastExerciseResponse{ExerciseID: exerciseID}, http.StatusOK)
}
