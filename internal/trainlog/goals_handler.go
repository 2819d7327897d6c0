package trainlog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/trainlog/internal/telemetry/tracing"
	"github.com/2beens/trainlog/pkg"

	log "github.com/sirupsen/logrus"
)

type AddGoalRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ReorderGoalsRequest struct {
	GoalIDs []int `json:"goal_ids"`
}

type LinkExerciseRequest struct {
	ExerciseID int `json:"exercise_id"`
}

func (handler *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.goals.list")
	defer span.End()

	goals, err := handler.repo.ListGoals(ctx)
	if err != nil {
		log.Errorf("list goals: %s", err)
		http.Error(w, "error, failed to fetch goals", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.goals.add")
	defer span.End()

	var req AddGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Tracef("add goal, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "error, name is required", http.StatusBadRequest)
		return
	}
	if req.Color == "" {
		req.Color = DefaultGoalColor
	}
	if !IsValidColor(req.Color) {
		http.Error(w, "error, invalid color", http.StatusBadRequest)
		return
	}

	goal, err := handler.repo.AddGoal(ctx, req.Name, req.Color)
	if err != nil {
		log.Errorf("add goal [%s]: %s", req.Name, err)
		http.Error(w, "error, failed to create goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("new goal added: %d %s", goal.ID, goal.Name)
	handler.logMutated("goal_add")
	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (handler *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.goals.update")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	var update GoalUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Tracef("update goal, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if update.Empty() {
		http.Error(w, "error, no fields to update", http.StatusBadRequest)
		return
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		http.Error(w, "error, name is required", http.StatusBadRequest)
		return
	}
	if update.Color != nil && !IsValidColor(*update.Color) {
		http.Error(w, "error, invalid color", http.StatusBadRequest)
		return
	}

	goal, err := handler.repo.UpdateGoal(ctx, id, update)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "error, goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update goal %d: %s", id, err)
		http.Error(w, "error, failed to update goal", http.StatusInternalServerError)
		return
	}

	handler.logMutated("goal_update")
	pkg.WriteJSON(w, goal, http.StatusOK)
}

func (handler *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.goals.delete")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	err := handler.repo.DeleteGoal(ctx, id)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "error, goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete goal %d: %s", id, err)
		http.Error(w, "error, failed to delete goal", http.StatusInternalServerError)
		return
	}

	// the goal's logs went with it
	handler.logMutated("goal_delete")
	pkg.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (handler *Handler) HandleReorderGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.goals.reorder")
	defer span.End()

	var req ReorderGoalsRequest
	if err := decodeJSON(r, &req); err != nil || len(req.GoalIDs) == 0 {
		http.Error(w, "error, goal_ids required", http.StatusBadRequest)
		return
	}

	seen := make(map[int]bool, len(req.GoalIDs))
	for _, id := range req.GoalIDs {
		if id <= 0 || seen[id] {
			http.Error(w, "error, invalid goal_ids", http.StatusBadRequest)
			return
		}
		seen[id] = true
	}

	err := handler.repo.ReorderGoals(ctx, req.GoalIDs)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "error, goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("reorder goals: %s", err)
		http.Error(w, "error, failed to reorder goals", http.StatusInternalServerError)
		return
	}

	handler.logMutated("goal_reorder")
	pkg.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (handler *Handler) HandleLinkedExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.links.list")
	defer span.End()

	goalID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.LinkedExercises(ctx, goalID)
	if err != nil {
		log.Errorf("linked exercises of goal %d: %s", goalID, err)
		http.Error(w, "error, failed to fetch linked exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleLinkExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.links.add")
	defer span.End()

	goalID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	var req LinkExerciseRequest
	if err := decodeJSON(r, &req); err != nil || req.ExerciseID <= 0 {
		http.Error(w, "error, exercise_id is required", http.StatusBadRequest)
		return
	}

	link, err := handler.repo.LinkExercise(ctx, goalID, req.ExerciseID)
	switch {
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, "error, goal not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrAlreadyLinked):
		http.Error(w, "error, exercise already linked to this goal", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("link exercise %d to goal %d: %s", req.ExerciseID, goalID, err)
		http.Error(w, "error, failed to link exercise to goal", http.StatusInternalServerError)
		return
	}

	handler.logMutated("link_add")
	pkg.WriteJSON(w, link, http.StatusCreated)
}

func (handler *Handler) HandleUnlinkExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainlog.links.delete")
	defer span.End()

	goalID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}
	exerciseID, ok := pathID(r, "exerciseId")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	err := handler.repo.UnlinkExercise(ctx, goalID, exerciseID)
	if errors.Is(err, ErrLinkNotFound) {
		http.Error(w, "error, link not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("unlink exercise %d from goal %d: %s", exerciseID, goalID, err)
		http.Error(w, "error, failed to unlink exercise from goal", http.StatusInternalServerError)
		return
	}

	handler.logMutated("link_delete")
	pkg.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}
