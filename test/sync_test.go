//go:build integration_test || all_tests

package test

import (
	"context"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/syncqueue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSyncQueue() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	chest := s.addGoal(ctx, "Chest", "red")
	bench := s.addExercise(ctx, "Bench press")
	s.linkExercise(ctx, chest.ID, bench.ID)

	store := syncqueue.NewRedisStore(s.redisClient, "it")
	queue := syncqueue.NewQueue(s.apiClient(), store, syncqueue.Options{SettleGrace: -1})
	require.NoError(t, queue.Load(ctx))
	require.NoError(t, queue.Refresh(ctx, 7))
	require.Len(t, queue.Snapshot(), 1)

	today := dates.Format(dates.Today())
	yesterday := dates.Format(dates.Today().AddDate(0, 0, -1))

	queue.SetOnline(false)
	_, err := queue.EnqueueUpsert(ctx, yesterday, syncqueue.GoalWithExercise{
		GoalID:     chest.ID,
		ExerciseID: bench.ID,
		Weight:     ptr(90.0),
		Reps:       ptr(3),
	})
	require.NoError(t, err)
	_, err = queue.EnqueueUpsert(ctx, today, syncqueue.GoalOnly{GoalID: chest.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, queue.Pending())
	assert.True(t, queue.Snapshot()[0].Logs[today].Completed)
	assert.ErrorIs(t, queue.Drain(ctx), syncqueue.ErrOffline)

	// a second queue on the same store picks up where the first one stopped
	restarted := syncqueue.NewQueue(s.apiClient(), store, syncqueue.Options{SettleGrace: -1})
	require.NoError(t, restarted.Load(ctx))
	require.Equal(t, 2, restarted.Pending())
	require.NoError(t, restarted.Drain(ctx))
	assert.Equal(t, 0, restarted.Pending())
	assert.Equal(t, syncqueue.StatusIdle, restarted.Status())

	_, err = restarted.EnqueueDelete(ctx, chest.ID, today)
	require.NoError(t, err)
	require.NoError(t, restarted.Drain(ctx))

	require.NoError(t, restarted.Refresh(ctx, 7))
	goals := restarted.Snapshot()
	require.Len(t, goals, 1)
	assert.NotContains(t, goals[0].Logs, today)
	require.Contains(t, goals[0].Logs, yesterday)
	assert.Equal(t, ptr(90.0), goals[0].Logs[yesterday].Weight)
	require.Len(t, goals[0].LinkedExercises, 1)
	assert.Equal(t, ptr(90.0), goals[0].LinkedExercises[0].History.MaxWeight.Weight)
	require.NotNil(t, restarted.LastFetchedAt())
}
