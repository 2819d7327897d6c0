// Package dates holds the calendar helpers shared by the analytics engine,
// the trainlog store and the sync queue. All dates are calendar days
// encoded as YYYY-MM-DD and handled in UTC.
package dates

import (
	"errors"
	"fmt"
	"time"
)

const (
	Layout      = "2006-01-02"
	MonthLayout = "2006-01"
)

var ErrInvalidDate = errors.New("invalid date")

const day = 24 * time.Hour

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// Truncate drops the time of day, keeping the calendar day of t in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return Truncate(time.Now())
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = Truncate(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func MonthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// YearBefore returns the same calendar day one year earlier. Feb 29 maps
// to Feb 28 instead of rolling over into March.
func YearBefore(t time.Time) time.Time {
	y, m, d := Truncate(t).Date()
	// day 0 of the next month is the last day of m
	if last := time.Date(y-1, m+1, 0, 0, 0, 0, 0, time.UTC).Day(); d > last {
		d = last
	}
	return time.Date(y-1, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end.
func DaysBetween(end, start time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)) / day)
}

// WeeksBetween returns the number of full weeks from start to end,
// truncated toward zero.
func WeeksBetween(end, start time.Time) int {
	return DaysBetween(end, start) / 7
}

// EachDay lists every calendar day in [start, end].
func EachDay(start, end time.Time) []time.Time {
	start, end = Truncate(start), Truncate(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// EachWeek lists the Mondays of every week that intersects [start, end].
func EachWeek(start, end time.Time) []time.Time {
	end = Truncate(end)
	var weeks []time.Time
	for w := WeekStart(start); !w.After(end); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

// EachMonth lists the first day of every month that intersects [start, end].
func EachMonth(start, end time.Time) []time.Time {
	end = MonthStart(end)
	var months []time.Time
	for m := MonthStart(start); !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
