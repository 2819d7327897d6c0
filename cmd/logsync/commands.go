package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/trainlog/internal/client"
	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/syncqueue"

	log "github.com/sirupsen/logrus"
)

const syncRefreshInterval = time.Minute

type logArgs struct {
	goalID     int
	date       string
	exerciseID int
	weight     float64
	reps       int
}

// parseLogArgs reads the shared upsert/delete flags. A missing date means
// today.
func parseLogArgs(name string, args []string, withExercise bool) (logArgs, error) {
	var la logArgs
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&la.goalID, "goal", 0, "goal id")
	fs.StringVar(&la.date, "date", "", "log date, YYYY-MM-DD (default today)")
	if withExercise {
		fs.IntVar(&la.exerciseID, "exercise", 0, "exercise id")
		fs.Float64Var(&la.weight, "weight", 0, "weight")
		fs.IntVar(&la.reps, "reps", 0, "reps")
	}
	if err := fs.Parse(args); err != nil {
		return la, err
	}

	if la.goalID <= 0 {
		return la, errors.New("-goal is required")
	}
	if la.date == "" {
		la.date = dates.Format(dates.Today())
	}
	if la.exerciseID == 0 && (la.weight != 0 || la.reps != 0) {
		return la, errors.New("-weight and -reps need -exercise")
	}
	return la, nil
}

func (la logArgs) target() syncqueue.LogTarget {
	if la.exerciseID == 0 {
		return syncqueue.GoalOnly{GoalID: la.goalID}
	}
	t := syncqueue.GoalWithExercise{
		GoalID:     la.goalID,
		ExerciseID: la.exerciseID,
	}
	if la.weight != 0 {
		weight := la.weight
		t.Weight = &weight
	}
	if la.reps != 0 {
		reps := la.reps
		t.Reps = &reps
	}
	return t
}

func (a *app) upsert(ctx context.Context, args []string) error {
	la, err := parseLogArgs("upsert", args, true)
	if err != nil {
		return err
	}
	m, err := a.queue.EnqueueUpsert(ctx, la.date, la.target())
	if err != nil {
		return err
	}
	log.Debugf("queued %s", m)

	a.drain(ctx)
	printView(os.Stdout, a.queue)
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	la, err := parseLogArgs("delete", args, false)
	if err != nil {
		return err
	}
	m, err := a.queue.EnqueueDelete(ctx, la.goalID, la.date)
	if err != nil {
		return err
	}
	log.Debugf("queued %s", m)

	a.drain(ctx)
	printView(os.Stdout, a.queue)
	return nil
}

// sync runs the queue worker and refreshes periodically until ctx is done.
func (a *app) sync(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.queue.Run(ctx)
	}()

	refresh := func() {
		if err := a.queue.Refresh(ctx, a.cfg.VisibleDays); err != nil {
			if ctx.Err() == nil {
				log.Warnf("refresh: %s", err)
			}
			return
		}
		log.Infof("refreshed, status %s, %d pending", a.queue.Status(), a.queue.Pending())
	}

	refresh()
	ticker := time.NewTicker(syncRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			<-done
			printView(os.Stdout, a.queue)
			return nil
		case <-ticker.C:
			refresh()
		}
	}
}

func (a *app) analytics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ContinueOnError)
	start := fs.String("start", "", "start date, YYYY-MM-DD")
	end := fs.String("end", "", "end date, YYYY-MM-DD (default today)")
	goalID := fs.Int("goal", 0, "goal id filter")
	exerciseID := fs.Int("exercise", 0, "exercise id filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := client.Filters{
		StartDate: *start,
		EndDate:   *end,
	}
	if *goalID > 0 {
		filters.GoalID = goalID
	}
	if *exerciseID > 0 {
		filters.ExerciseID = exerciseID
	}

	result, err := client.NewAnalyticsFetcher(a.api).Fetch(ctx, filters)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode analytics: %w", err)
	}
	return nil
}
