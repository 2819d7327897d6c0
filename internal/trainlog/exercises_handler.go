package trainlog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/trainlog/internal/telemetry/tracing"
	"github.com/2beens/trainlog/pkg"

	log "github.com/sirupsen/logrus"
)

type ExerciseNameRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.exercises.list")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "error, failed to fetch exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.exercises.add")
	defer span.End()

	var req ExerciseNameRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		http.Error(w, "error, name is required", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.AddExercise(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		log.Errorf("add exercise [%s]: %s", req.Name, err)
		http.Error(w, "error, failed to create exercise", http.StatusInternalServerError)
		return
	}

	handler.logMutated("exercise_add")
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleRenameExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.exercises.rename")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	var req ExerciseNameRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		http.Error(w, "error, name is required", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.RenameExercise(ctx, id, strings.TrimSpace(req.Name))
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("rename exercise %d: %s", id, err)
		http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		return
	}

	handler.logMutated("exercise_rename")
	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.exercises.delete")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	err := handler.repo.DeleteExercise(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete exercise %d: %s", id, err)
		http.Error(w, "error, failed to delete exercise", http.StatusInternalServerError)
		return
	}

	handler.logMutated("exercise_delete")
	pkg.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (handler *Handler) HandleExerciseStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.exercises.stats")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	logs, err := handler.repo.ExerciseWeightLogs(ctx, id)
	if err != nil {
		log.Errorf("exercise %d stats: %s", id, err)
		http.Error(w, "error, failed to fetch exercise stats", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []WeightLog{}
	}

	pkg.WriteJSON(w, ExerciseStatsResponse{Logs: logs}, http.StatusOK)
}
