package analytics

import (
	"time"

	"github.com/2beens/trainlog/internal/dates"
)

// TotalWeeks is the inclusive number of weeks spanning start..end.
func TotalWeeks(start, end time.Time) int {
	return dates.WeeksBetween(end, start) + 1
}

func recordDays(records []CompletionRecord) []time.Time {
	days := make([]time.Time, len(records))
	for i, r := range records {
		days[i] = r.Date
	}
	return days
}

// Summarize computes the completion summary over [start, end] for the given
// records, which are expected to be already filtered to that range.
func Summarize(records []CompletionRecord, start, end, today time.Time) CompletionSummary {
	totalWeeks := TotalWeeks(start, end)
	days := recordDays(records)
	activeWeeks := len(weekSet(days))
	streak := WeeklyStreak(days, today)

	averagePerWeek := 0.0
	if totalWeeks > 0 {
		averagePerWeek = round2(float64(len(records)) / float64(totalWeeks))
	}

	return CompletionSummary{
		TotalWeeks:       totalWeeks,
		ActiveWeeks:      activeWeeks,
		TotalCompletions: len(records),
		CompletionRate:   percent(activeWeeks, totalWeeks),
		CurrentStreak:    streak.Current,
		LongestStreak:    streak.Longest,
		AveragePerWeek:   averagePerWeek,
	}
}

// ByGoal repeats the summary per goal, in the order the goals are given.
// Goals without completions get zeroed stats and a nil LastCompleted.
func ByGoal(goals []Goal, records []CompletionRecord, start, end, today time.Time) []GoalCompletionStats {
	totalWeeks := TotalWeeks(start, end)

	perGoal := make(map[int][]time.Time)
	for _, r := range records {
		perGoal[r.GoalID] = append(perGoal[r.GoalID], r.Date)
	}

	stats := make([]GoalCompletionStats, 0, len(goals))
	for _, g := range goals {
		days := perGoal[g.ID]
		streak := WeeklyStreak(days, today)

		var lastCompleted *string
		if len(days) > 0 {
			last := days[0]
			for _, d := range days[1:] {
				if d.After(last) {
					last = d
				}
			}
			s := dates.Format(last)
			lastCompleted = &s
		}

		stats = append(stats, GoalCompletionStats{
			GoalID:           g.ID,
			GoalName:         g.Name,
			GoalColor:        g.Color,
			TotalCompletions: len(days),
			CompletionRate:   percent(len(weekSet(days)), totalWeeks),
			CurrentStreak:    streak.Current,
			LongestStreak:    streak.Longest,
			LastCompleted:    lastCompleted,
		})
	}

	return stats
}
