//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/middleware"
	"github.com/2beens/trainlog/internal/trainlog"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestUnauthorized() {
	t := s.T()

	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/api/goals", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(middleware.TokenHeader, "not-the-token")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestGoalsAndExercises() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	names := []string{gofakeit.HipsterWord(), gofakeit.HipsterWord(), gofakeit.HipsterWord()}
	goals := make([]trainlog.Goal, 0, len(names))
	for _, n := range names {
		goals = append(goals, s.addGoal(ctx, "goal "+n, "blue"))
	}
	for i, g := range goals {
		assert.Equal(t, i+1, g.DisplayOrder)
	}

	s.doJSON(ctx, http.MethodPut, "/api/goals/order", trainlog.ReorderGoalsRequest{
		GoalIDs: []int{goals[2].ID, goals[0].ID, goals[1].ID},
	}, http.StatusOK, nil)

	var listed []trainlog.Goal
	s.doJSON(ctx, http.MethodGet, "/api/goals", nil, http.StatusOK, &listed)
	require.Len(t, listed, 3)
	assert.Equal(t, []int{goals[2].ID, goals[0].ID, goals[1].ID}, []int{listed[0].ID, listed[1].ID, listed[2].ID})

	bench := s.addExercise(ctx, "Bench press")
	s.linkExercise(ctx, goals[0].ID, bench.ID)
	s.doJSON(
		ctx,
		http.MethodPost, fmt.Sprintf("/api/goals/%d/exercises", goals[0].ID),
		trainlog.LinkExerciseRequest{ExerciseID: bench.ID},
		http.StatusConflict, nil,
	)

	var linked []trainlog.Exercise
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/goals/%d/exercises", goals[0].ID), nil, http.StatusOK, &linked)
	require.Len(t, linked, 1)
	assert.Equal(t, "Bench press", linked[0].Name)

	s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/goals/%d", goals[1].ID), nil, http.StatusOK, nil)
	s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/goals/%d", goals[1].ID), nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestToggleLogs() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	api := s.apiClient()

	chest := s.addGoal(ctx, "Chest", "red")
	bench := s.addExercise(ctx, "Bench press")
	s.linkExercise(ctx, chest.ID, bench.ID)

	today := dates.Format(dates.Today())
	yesterday := dates.Format(dates.Today().AddDate(0, 0, -1))

	require.NoError(t, api.UpsertLog(ctx, trainlog.ToggleLog{GoalID: chest.ID, Date: yesterday, ExerciseID: &bench.ID, Weight: ptr(80.0), Reps: ptr(5)}))
	require.NoError(t, api.UpsertLog(ctx, trainlog.ToggleLog{GoalID: chest.ID, Date: today, ExerciseID: &bench.ID, Weight: ptr(70.0), Reps: ptr(8)}))

	goals, err := api.FetchGoalsWithLogs(ctx, 7)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	g := goals[0]
	require.Len(t, g.Logs, 2)
	assert.Equal(t, ptr(70.0), g.Logs[today].Weight)
	assert.Equal(t, &bench.ID, g.LastCompletedExerciseID)

	require.Len(t, g.LinkedExercises, 1)
	history := g.LinkedExercises[0].History
	require.NotNil(t, history)
	assert.Equal(t, ptr(80.0), history.MaxWeight.Weight)
	assert.Equal(t, today, history.LastLog.Date)

	// upsert overwrites, delete is unconditional
	require.NoError(t, api.UpsertLog(ctx, trainlog.ToggleLog{GoalID: chest.ID, Date: today}))
	require.NoError(t, api.DeleteLog(ctx, chest.ID, yesterday))
	require.NoError(t, api.DeleteLog(ctx, chest.ID, yesterday))

	goals, err = api.FetchGoalsWithLogs(ctx, 7)
	require.NoError(t, err)
	require.Len(t, goals[0].Logs, 1)
	assert.Nil(t, goals[0].Logs[today].ExerciseID)

	var stats trainlog.ExerciseStatsResponse
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/exercises/%d/stats", bench.ID), nil, http.StatusOK, &stats)
	require.Len(t, stats.Logs, 1)
	assert.Equal(t, today, stats.Logs[0].Date)

	// unknown goal
	err = api.UpsertLog(ctx, trainlog.ToggleLog{GoalID: 9999, Date: today})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
