package trainlog

import (
	"sort"
)

// SortGoals returns a sorted copy of goals, either by display order or by
// urgency: goals never completed first, then the ones completed longest ago.
func SortGoals(goals []GoalWithLogs, byUrgency bool) []GoalWithLogs {
	sorted := make([]GoalWithLogs, len(goals))
	copy(sorted, goals)

	if !byUrgency {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DisplayOrder < sorted[j].DisplayOrder
		})
		return sorted
	}

	lastCompleted := make(map[int]string, len(sorted))
	for _, g := range sorted {
		lastCompleted[g.ID] = g.LastCompletedDate()
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		lastI, lastJ := lastCompleted[sorted[i].ID], lastCompleted[sorted[j].ID]
		switch {
		case lastI == "" && lastJ == "":
			return sorted[i].DisplayOrder < sorted[j].DisplayOrder
		case lastI == "":
			return true
		case lastJ == "":
			return false
		}
		return lastI < lastJ
	})
	return sorted
}
