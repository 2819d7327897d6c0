//go:build integration_test || all_tests

package test

import (
	"context"

	"github.com/2beens/trainlog/internal/client"
	"github.com/2beens/trainlog/internal/trainlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAnalytics() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	api := s.apiClient()

	chest := s.addGoal(ctx, "Chest", "red")
	legs := s.addGoal(ctx, "Legs", "green")
	bench := s.addExercise(ctx, "Bench press")
	s.linkExercise(ctx, chest.ID, bench.ID)

	for _, toggle := range []trainlog.ToggleLog{
		{GoalID: chest.ID, Date: "2024-03-05", ExerciseID: &bench.ID, Weight: ptr(60.0), Reps: ptr(5)},
		{GoalID: chest.ID, Date: "2024-03-06"},
		{GoalID: legs.ID, Date: "2024-03-06"},
		{GoalID: chest.ID, Date: "2024-03-12", ExerciseID: &bench.ID, Weight: ptr(65.0), Reps: ptr(5)},
	} {
		require.NoError(t, api.UpsertLog(ctx, toggle))
	}

	filters := client.Filters{StartDate: "2024-03-04", EndDate: "2024-03-17"}

	heatmap, err := api.Heatmap(ctx, filters)
	require.NoError(t, err)
	assert.Len(t, heatmap.Days, 14)
	assert.Equal(t, 2, heatmap.MaxCount)
	assert.Equal(t, 3, heatmap.TotalDays)
	assert.Equal(t, "2024-03-06", heatmap.Days[2].Date)
	assert.Equal(t, 2, heatmap.Days[2].Count)
	assert.Equal(t, "2024-03-04", heatmap.DateRange.StartDate)

	completion, err := api.Completion(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 4, completion.Summary.TotalCompletions)
	assert.Equal(t, 2, completion.Summary.TotalWeeks)
	assert.Equal(t, 2, completion.Summary.ActiveWeeks)
	require.Len(t, completion.ByGoal, 2)
	assert.Equal(t, chest.ID, completion.ByGoal[0].GoalID)
	assert.Equal(t, 3, completion.ByGoal[0].TotalCompletions)
	require.Len(t, completion.Trends, 2)
	assert.Equal(t, 3, completion.Trends[0].Completions)

	progression, err := api.Progression(ctx, client.Filters{
		StartDate:  filters.StartDate,
		EndDate:    filters.EndDate,
		ExerciseID: &bench.ID,
	})
	require.NoError(t, err)
	require.Len(t, progression.Exercises, 1)
	p := progression.Exercises[0]
	assert.Equal(t, "Bench press", p.ExerciseName)
	assert.Equal(t, []string{"Chest"}, p.GoalNames)
	assert.Equal(t, 2, p.TotalSessions)
	require.NotNil(t, p.Stats.WeightChange)
	assert.Equal(t, 5.0, *p.Stats.WeightChange)
	require.NotNil(t, p.Stats.MaxWeight)
	assert.Equal(t, 65.0, *p.Stats.MaxWeight)

	// a new log invalidates cached responses
	require.NoError(t, api.UpsertLog(ctx, trainlog.ToggleLog{GoalID: legs.ID, Date: "2024-03-16"}))
	heatmap, err = api.Heatmap(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 4, heatmap.TotalDays)
}
