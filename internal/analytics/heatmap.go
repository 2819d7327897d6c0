package analytics

import (
	"time"

	"github.com/2beens/trainlog/internal/dates"
)

// HeatmapLevel buckets count relative to maxCount into 0..4.
func HeatmapLevel(count, maxCount int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio <= 0.25:
		return 1
	case ratio <= 0.5:
		return 2
	case ratio <= 0.75:
		return 3
	default:
		return 4
	}
}

// Heatmap lists every day in [start, end] with its completion count and
// level. TotalDays is the number of days with at least one completion.
func Heatmap(records []CompletionRecord, start, end time.Time) HeatmapAnalyticsResponse {
	countByDate := make(map[time.Time]int)
	maxCount := 0
	for _, r := range records {
		d := dates.Truncate(r.Date)
		if d.Before(dates.Truncate(start)) || d.After(dates.Truncate(end)) {
			continue
		}
		countByDate[d]++
		maxCount = max(maxCount, countByDate[d])
	}

	allDays := dates.EachDay(start, end)
	days := make([]HeatmapDay, 0, len(allDays))
	for _, d := range allDays {
		count := countByDate[d]
		days = append(days, HeatmapDay{
			Date:  dates.Format(d),
			Count: count,
			Level: HeatmapLevel(count, maxCount),
		})
	}

	return HeatmapAnalyticsResponse{
		Days: days,
		DateRange: DateRange{
			StartDate: dates.Format(start),
			EndDate:   dates.Format(end),
		},
		MaxCount:  maxCount,
		TotalDays: len(countByDate),
	}
}
