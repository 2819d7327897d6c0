package syncqueue_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/trainlog/internal/trainlog"
)

var errNetwork = errors.New("network unreachable")

// fakeServer is an in-memory backend with the trainlog write semantics:
// upsert overwrites, delete is unconditional.
type fakeServer struct {
	mu    sync.Mutex
	goals []trainlog.Goal
	logs  map[int]map[string]trainlog.LogEntry
	calls []string

	failWrites bool
	// stale, when set, is returned by fetches instead of the real state
	stale []trainlog.GoalWithLogs

	// entered receives once per write when set; release must then be
	// closed or fed for the write to finish
	entered chan struct{}
	release chan struct{}
}

func newFakeServer(goals ...trainlog.Goal) *fakeServer {
	return &fakeServer{
		goals: goals,
		logs:  make(map[int]map[string]trainlog.LogEntry),
	}
}

func (s *fakeServer) write(call string, fn func()) error {
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	if s.failWrites {
		return errNetwork
	}
	fn()
	return nil
}

func (s *fakeServer) UpsertLog(_ context.Context, toggle trainlog.ToggleLog) error {
	return s.write(fmt.Sprintf("upsert %d %s", toggle.GoalID, toggle.Date), func() {
		if s.logs[toggle.GoalID] == nil {
			s.logs[toggle.GoalID] = make(map[string]trainlog.LogEntry)
		}
		s.logs[toggle.GoalID][toggle.Date] = trainlog.LogEntry{
			Completed:  true,
			ExerciseID: toggle.ExerciseID,
			Weight:     toggle.Weight,
			Reps:       toggle.Reps,
		}
	})
}

func (s *fakeServer) DeleteLog(_ context.Context, goalID int, date string) error {
	return s.write(fmt.Sprintf("delete %d %s", goalID, date), func() {
		delete(s.logs[goalID], date)
	})
}

func (s *fakeServer) FetchGoalsWithLogs(_ context.Context, _ int) ([]trainlog.GoalWithLogs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale != nil {
		return s.stale, nil
	}

	goals := make([]trainlog.GoalWithLogs, 0, len(s.goals))
	for _, g := range s.goals {
		logs := make(map[string]trainlog.LogEntry)
		for d, e := range s.logs[g.ID] {
			logs[d] = e
		}
		goals = append(goals, trainlog.GoalWithLogs{
			Goal:            g,
			Logs:            logs,
			LinkedExercises: []trainlog.ExerciseWithHistory{},
		})
	}
	return goals, nil
}

func (s *fakeServer) setFailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

func (s *fakeServer) setStale(goals []trainlog.GoalWithLogs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = goals
}

func (s *fakeServer) hasLog(goalID int, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.logs[goalID][date]
	return ok
}

func (s *fakeServer) callLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]string, len(s.calls))
	copy(calls, s.calls)
	return calls
}

func (s *fakeServer) loggedDates(goalID int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []string
	for d := range s.logs[goalID] {
		res = append(res, d)
	}
	sort.Strings(res)
	return res
}
