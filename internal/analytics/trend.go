package analytics

import (
	"sort"
	"time"

	"github.com/2beens/trainlog/internal/dates"
)

type point struct {
	x int
	y float64
}

// fitLine is an ordinary least squares fit of y over x. ok is false when
// fewer than 2 points are given.
func fitLine(points []point) (slope, intercept float64, ok bool) {
	n := float64(len(points))
	if len(points) < 2 {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		x := float64(p.x)
		sumX += x
		sumY += p.y
		sumXY += x * p.y
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

// TrendLine fits a line over the index sequence 0..n-1 of values. Fitted
// values are floored at 0 and rounded to 2 decimals. With fewer than 2
// values the raw values are returned.
func TrendLine(values []float64) []float64 {
	points := make([]point, len(values))
	for i, v := range values {
		points[i] = point{x: i, y: v}
	}

	trend := make([]float64, len(values))
	slope, intercept, ok := fitLine(points)
	if !ok {
		copy(trend, values)
		return trend
	}
	for i := range values {
		trend[i] = max(0, round2(slope*float64(i)+intercept))
	}
	return trend
}

// ExtrapolateTrend projects one step past the last two fitted values,
// floored at 0. With fewer than 2 values it returns the last one, or 0.
func ExtrapolateTrend(trend []float64) float64 {
	switch len(trend) {
	case 0:
		return 0
	case 1:
		return trend[0]
	}
	last := trend[len(trend)-1]
	secondLast := trend[len(trend)-2]
	return max(0, round2(last+(last-secondLast)))
}

// sparseTrendLine fits over the non nil values only, keeping their original
// index, and yields a fitted value for every index rounded to 1 decimal.
// With fewer than 2 non nil values the input is returned as is.
func sparseTrendLine(values []*float64) []*float64 {
	var points []point
	for i, v := range values {
		if v != nil {
			points = append(points, point{x: i, y: *v})
		}
	}

	trend := make([]*float64, len(values))
	slope, intercept, ok := fitLine(points)
	if !ok {
		for i, v := range values {
			if v != nil {
				vv := *v
				trend[i] = &vv
			}
		}
		return trend
	}
	for i := range values {
		fitted := round1(slope*float64(i) + intercept)
		trend[i] = &fitted
	}
	return trend
}

func sortedByDate(records []CompletionRecord) []CompletionRecord {
	sorted := make([]CompletionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// WeeklyTrends lists every week intersecting [start, end] with its number
// of completion events. GoalsCompleted holds one goal id per event, so a
// goal logged twice in a week appears twice.
func WeeklyTrends(records []CompletionRecord, start, end time.Time) []CompletionTrend {
	byWeek := make(map[time.Time][]int)
	for _, r := range sortedByDate(records) {
		w := dates.WeekStart(r.Date)
		byWeek[w] = append(byWeek[w], r.GoalID)
	}

	weeks := dates.EachWeek(start, end)
	trends := make([]CompletionTrend, 0, len(weeks))
	values := make([]float64, 0, len(weeks))
	for _, w := range weeks {
		goalsCompleted := byWeek[w]
		if goalsCompleted == nil {
			goalsCompleted = []int{}
		}
		trends = append(trends, CompletionTrend{
			Date:           dates.Format(w),
			Completions:    len(goalsCompleted),
			GoalsCompleted: goalsCompleted,
		})
		values = append(values, float64(len(goalsCompleted)))
	}

	for i, t := range TrendLine(values) {
		trends[i].Trend = t
	}
	return trends
}

// MonthlyTrainingDays lists every month intersecting [start, end] with its
// number of distinct days having at least one completion. The month
// containing today, when it is the last one, is left out of the fit and
// gets the extrapolated trend value instead.
func MonthlyTrainingDays(records []CompletionRecord, start, end, today time.Time) []MonthlyTrainingDays {
	daysByMonth := make(map[string]map[time.Time]struct{})
	for _, r := range records {
		key := dates.MonthKey(r.Date)
		if daysByMonth[key] == nil {
			daysByMonth[key] = make(map[time.Time]struct{})
		}
		daysByMonth[key][dates.Truncate(r.Date)] = struct{}{}
	}

	months := dates.EachMonth(start, end)
	monthly := make([]MonthlyTrainingDays, 0, len(months))
	values := make([]float64, 0, len(months))
	for _, m := range months {
		key := dates.MonthKey(m)
		days := len(daysByMonth[key])
		monthly = append(monthly, MonthlyTrainingDays{
			Month:        key,
			TrainingDays: days,
		})
		values = append(values, float64(days))
	}

	if len(monthly) == 0 {
		return monthly
	}

	currentIncluded := monthly[len(monthly)-1].Month == dates.MonthKey(today)
	if !currentIncluded {
		for i, t := range TrendLine(values) {
			monthly[i].Trend = t
		}
		return monthly
	}

	completed := TrendLine(values[:len(values)-1])
	for i, t := range completed {
		monthly[i].Trend = t
	}
	last := len(monthly) - 1
	if len(completed) == 0 {
		monthly[last].Trend = values[last]
	} else {
		monthly[last].Trend = ExtrapolateTrend(completed)
	}
	return monthly
}
