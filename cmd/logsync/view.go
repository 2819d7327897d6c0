package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/syncqueue"
	"github.com/2beens/trainlog/internal/trainlog"
)

type viewSource interface {
	Snapshot() []trainlog.GoalWithLogs
	Status() syncqueue.Status
	Pending() int
	LastError() error
	LastFetchedAt() *time.Time
}

func visibleDates(today time.Time, days int) []string {
	res := make([]string, days)
	for i := range days {
		res[i] = dates.Format(today.AddDate(0, 0, i-days+1))
	}
	return res
}

func logCell(entry trainlog.LogEntry, ok bool) string {
	if !ok || !entry.Completed {
		return "."
	}
	if entry.Weight != nil {
		if entry.Reps != nil {
			return fmt.Sprintf("%gx%d", *entry.Weight, *entry.Reps)
		}
		return fmt.Sprintf("%g", *entry.Weight)
	}
	return "x"
}

// renderView writes one row per goal with a cell per visible day, followed
// by the queue state.
func renderView(w io.Writer, src viewSource, today time.Time, days int) {
	days = max(days, 1)
	visible := visibleDates(today, days)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"ID", "GOAL"}
	for _, d := range visible {
		header = append(header, d[5:])
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, g := range src.Snapshot() {
		row := []string{fmt.Sprint(g.ID), g.Name}
		for _, d := range visible {
			entry, ok := g.Logs[d]
			row = append(row, logCell(entry, ok))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nstatus: %s, pending: %d", src.Status(), src.Pending())
	if fetchedAt := src.LastFetchedAt(); fetchedAt != nil {
		fmt.Fprintf(w, ", fetched: %s", fetchedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintln(w)
	if err := src.LastError(); err != nil {
		fmt.Fprintf(w, "last error: %s\n", err)
	}
}

func printView(w io.Writer, q *syncqueue.Queue) {
	renderView(w, q, dates.Today(), 7)
}
