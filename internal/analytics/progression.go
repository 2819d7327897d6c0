package analytics

import (
	"sort"

	"github.com/2beens/trainlog/internal/dates"
)

// Estimate1RM is the Epley one rep max estimate. A missing or non positive
// weight yields nil. A missing, non positive or single rep count yields the
// weight unchanged.
func Estimate1RM(weight *float64, reps *int) *float64 {
	if weight == nil || *weight <= 0 {
		return nil
	}
	w := *weight
	if reps == nil || *reps <= 0 || *reps == 1 {
		return &w
	}
	estimated := round1(w * (1 + float64(*reps)/30))
	return &estimated
}

// Progression builds the progression series and stats of one exercise from
// its logs. Logs without a weight are ignored. It returns nil when no log
// with a weight is left.
func Progression(exercise ExerciseWithGoals, logs []WeightRepEntry) *ExerciseProgression {
	weighted := make([]WeightRepEntry, 0, len(logs))
	for _, l := range logs {
		if l.Weight != nil {
			weighted = append(weighted, l)
		}
	}
	if len(weighted) == 0 {
		return nil
	}
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].Date.Before(weighted[j].Date)
	})

	progression := make([]ProgressionEntry, len(weighted))
	oneRMs := make([]*float64, len(weighted))
	for i, l := range weighted {
		oneRMs[i] = Estimate1RM(l.Weight, l.Reps)
		progression[i] = ProgressionEntry{
			Date:         dates.Format(l.Date),
			Weight:       l.Weight,
			Reps:         l.Reps,
			Estimated1RM: oneRMs[i],
		}
	}
	for i, t := range sparseTrendLine(oneRMs) {
		progression[i].Trend = t
	}

	goalNames := exercise.GoalNames
	if goalNames == nil {
		goalNames = []string{}
	}

	return &ExerciseProgression{
		ExerciseID:    exercise.ID,
		ExerciseName:  exercise.Name,
		GoalNames:     goalNames,
		TotalSessions: len(weighted),
		Progression:   progression,
		Stats:         exerciseStats(weighted, progression),
	}
}

// exerciseStats expects weighted logs sorted by date; progression is built
// from them index by index.
func exerciseStats(weighted []WeightRepEntry, progression []ProgressionEntry) ExerciseStats {
	var stats ExerciseStats

	var weightSum float64
	for i, l := range weighted {
		w := *l.Weight
		weightSum += w
		if stats.MaxWeight == nil || w > *stats.MaxWeight {
			stats.MaxWeight = &w
			d := progression[i].Date
			stats.MaxWeightDate = &d
		}
	}
	avgWeight := round1(weightSum / float64(len(weighted)))
	stats.AverageWeight = &avgWeight

	var repsSum, repsCount int
	for _, l := range weighted {
		if l.Reps != nil {
			repsSum += *l.Reps
			repsCount++
		}
	}
	if repsCount > 0 {
		avgReps := round1(float64(repsSum) / float64(repsCount))
		stats.AverageReps = &avgReps
	}

	for _, p := range progression {
		if p.Estimated1RM == nil {
			continue
		}
		if stats.Max1RM == nil || *p.Estimated1RM > *stats.Max1RM {
			v := *p.Estimated1RM
			stats.Max1RM = &v
			d := p.Date
			stats.Max1RMDate = &d
		}
	}

	first := *weighted[0].Weight
	last := *weighted[len(weighted)-1].Weight
	change := round2(last - first)
	stats.WeightChange = &change
	if first > 0 {
		changePercent := int(roundHalfUp((last - first) / first * 100))
		stats.WeightChangePercent = &changePercent
	}

	return stats
}
