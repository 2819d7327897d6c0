package syncqueue

import (
	"maps"

	"github.com/2beens/trainlog/internal/trainlog"
)

// cloneGoal copies everything a local effect may touch, so a view handed
// out earlier never changes underneath its holder.
func cloneGoal(g trainlog.GoalWithLogs) trainlog.GoalWithLogs {
	c := g
	c.Logs = maps.Clone(g.Logs)
	if c.Logs == nil {
		c.Logs = make(map[string]trainlog.LogEntry)
	}
	if g.LinkedExercises != nil {
		c.LinkedExercises = make([]trainlog.ExerciseWithHistory, len(g.LinkedExercises))
		for i, e := range g.LinkedExercises {
			c.LinkedExercises[i] = e
			if e.History != nil {
				h := *e.History
				c.LinkedExercises[i].History = &h
			}
		}
	}
	return c
}

func cloneGoals(goals []trainlog.GoalWithLogs) []trainlog.GoalWithLogs {
	if goals == nil {
		return nil
	}
	cloned := make([]trainlog.GoalWithLogs, len(goals))
	for i, g := range goals {
		cloned[i] = cloneGoal(g)
	}
	return cloned
}

// applyUpsert marks (goal, date) completed with the payload's exercise data
// and refreshes the linked exercise's history: the max weight entry when a
// positive weight beats it, the last log entry whenever an exercise is given.
func applyUpsert(goals []trainlog.GoalWithLogs, p Payload) []trainlog.GoalWithLogs {
	result := make([]trainlog.GoalWithLogs, len(goals))
	for i, g := range goals {
		if g.ID != p.GoalID {
			result[i] = g
			continue
		}

		g = cloneGoal(g)
		g.Logs[p.Date] = trainlog.LogEntry{
			Completed:  true,
			ExerciseID: p.ExerciseID,
			Weight:     p.Weight,
			Reps:       p.Reps,
		}

		if p.ExerciseID != nil {
			entry := trainlog.HistoryEntry{
				Weight: p.Weight,
				Reps:   p.Reps,
				Date:   p.Date,
			}
			for j, e := range g.LinkedExercises {
				if e.ID != *p.ExerciseID {
					continue
				}
				history := trainlog.ExerciseHistory{}
				if e.History != nil {
					history = *e.History
				}
				currentMax := 0.0
				if history.MaxWeight != nil && history.MaxWeight.Weight != nil {
					currentMax = *history.MaxWeight.Weight
				}
				if p.Weight != nil && *p.Weight > 0 && *p.Weight > currentMax {
					maxEntry := entry
					history.MaxWeight = &maxEntry
				}
				lastEntry := entry
				history.LastLog = &lastEntry
				g.LinkedExercises[j].History = &history
			}
		}

		if p.ExerciseID != nil && *p.ExerciseID != 0 {
			exerciseID := *p.ExerciseID
			g.LastCompletedExerciseID = &exerciseID
		}

		result[i] = g
	}
	return result
}

// applyDelete drops the (goal, date) entry entirely.
func applyDelete(goals []trainlog.GoalWithLogs, goalID int, date string) []trainlog.GoalWithLogs {
	result := make([]trainlog.GoalWithLogs, len(goals))
	for i, g := range goals {
		if g.ID != goalID {
			result[i] = g
			continue
		}
		g = cloneGoal(g)
		delete(g.Logs, date)
		result[i] = g
	}
	return result
}

func apply(goals []trainlog.GoalWithLogs, m PendingMutation) []trainlog.GoalWithLogs {
	switch m.Kind {
	case KindUpsert:
		return applyUpsert(goals, m.Payload)
	case KindDelete:
		return applyDelete(goals, m.Payload.GoalID, m.Payload.Date)
	default:
		return goals
	}
}

// Replay applies mutations in order on top of goals and returns the result.
// goals itself is left untouched.
func Replay(goals []trainlog.GoalWithLogs, mutations []PendingMutation) []trainlog.GoalWithLogs {
	for _, m := range mutations {
		goals = apply(goals, m)
	}
	return goals
}
