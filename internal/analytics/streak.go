package analytics

import (
	"sort"
	"time"

	"github.com/2beens/trainlog/internal/dates"
)

// weekSet collapses days into the set of their Monday week starts.
func weekSet(days []time.Time) map[time.Time]struct{} {
	weeks := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		weeks[dates.WeekStart(d)] = struct{}{}
	}
	return weeks
}

// WeeklyStreak counts runs of consecutive Monday-anchored weeks with at
// least one completion. Current counts back from the week containing today
// and is 0 when that week has no completion.
func WeeklyStreak(days []time.Time, today time.Time) Streak {
	if len(days) == 0 {
		return Streak{}
	}

	set := weekSet(days)
	weeks := make([]time.Time, 0, len(set))
	for w := range set {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	longest, run := 1, 1
	for i := 1; i < len(weeks); i++ {
		if dates.WeeksBetween(weeks[i], weeks[i-1]) == 1 {
			run++
		} else {
			longest = max(longest, run)
			run = 1
		}
	}
	longest = max(longest, run)

	current := 0
	for w := dates.WeekStart(today); ; w = w.AddDate(0, 0, -7) {
		if _, ok := set[w]; !ok {
			break
		}
		current++
	}

	return Streak{Current: current, Longest: longest}
}
