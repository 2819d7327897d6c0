package syncqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/trainlog/internal/trainlog"

	log "github.com/sirupsen/logrus"
)

var (
	ErrDrainInProgress = errors.New("drain already in progress")
	ErrOffline         = errors.New("queue is offline")
)

//go:generate mockgen -source=$GOFILE -destination=queue_mocks_test.go -package=syncqueue_test

// Transport talks to the trainlog backend. Any returned error counts as a
// failed delivery.
type Transport interface {
	UpsertLog(ctx context.Context, toggle trainlog.ToggleLog) error
	DeleteLog(ctx context.Context, goalID int, date string) error
	FetchGoalsWithLogs(ctx context.Context, visibleDays int) ([]trainlog.GoalWithLogs, error)
}

type Status string

const (
	StatusIdle     Status = "idle"
	StatusDraining Status = "draining"
	StatusBlocked  Status = "blocked"
)

const DefaultSettleGrace = 5 * time.Second

type Options struct {
	// SettleGrace is how long a delivered mutation keeps being replayed on
	// top of fetched snapshots. Zero means DefaultSettleGrace, negative
	// disables it.
	SettleGrace time.Duration
	Now         func() time.Time
}

type settledMutation struct {
	mutation  PendingMutation
	settledAt time.Time
}

// Queue owns the view model and the FIFO of log mutations not yet delivered
// to the backend. Every view model change goes through an enqueue or a
// refresh. At most one mutation request is in flight at any time.
type Queue struct {
	transport   Transport
	store       Store
	settleGrace time.Duration
	now         func() time.Time

	mu       sync.Mutex
	state    State
	settled  []settledMutation
	draining bool
	offline  bool
	lastErr  error

	kick chan struct{}
}

func NewQueue(transport Transport, store Store, opts Options) *Queue {
	settleGrace := opts.SettleGrace
	if settleGrace == 0 {
		settleGrace = DefaultSettleGrace
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Queue{
		transport:   transport,
		store:       store,
		settleGrace: settleGrace,
		now:         now,
		state: State{
			Goals:               []trainlog.GoalWithLogs{},
			PendingLogMutations: []PendingMutation{},
		},
		kick: make(chan struct{}, 1),
	}
}

// Load restores the persisted state and schedules a drain when mutations
// were left over from the previous run.
func (q *Queue) Load(ctx context.Context) error {
	state, err := q.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load queue state: %w", err)
	}
	if state == nil {
		log.Debugln("sync queue: no persisted state")
		return nil
	}

	q.mu.Lock()
	q.state = *state
	if q.state.Goals == nil {
		q.state.Goals = []trainlog.GoalWithLogs{}
	}
	if q.state.PendingLogMutations == nil {
		q.state.PendingLogMutations = []PendingMutation{}
	}
	pending := len(q.state.PendingLogMutations)
	q.mu.Unlock()

	log.Debugf("sync queue: restored %d pending mutations", pending)
	if pending > 0 {
		q.trigger()
	}
	return nil
}

func (q *Queue) persistLocked(ctx context.Context) {
	if q.store == nil {
		return
	}
	if err := q.store.Save(ctx, &q.state); err != nil {
		log.Errorf("sync queue: persist state: %s", err)
	}
}

func (q *Queue) trigger() {
	select {
	case q.kick <- struct{}{}:
	default:
	}
}

func (q *Queue) enqueue(ctx context.Context, m PendingMutation) {
	q.mu.Lock()
	q.state.PendingLogMutations = append(q.state.PendingLogMutations, m)
	q.state.Goals = trainlog.SortGoals(apply(q.state.Goals, m), q.state.SortByUrgency)
	q.persistLocked(ctx)
	q.mu.Unlock()

	log.Tracef("sync queue: enqueued %s", m)
	q.trigger()
}

// EnqueueUpsert records a completed goal for date. The view model reflects
// it right away, delivery happens on the next drain.
func (q *Queue) EnqueueUpsert(ctx context.Context, date string, target LogTarget) (PendingMutation, error) {
	m, err := NewUpsert(date, target)
	if err != nil {
		return PendingMutation{}, err
	}
	q.enqueue(ctx, m)
	return m, nil
}

func (q *Queue) EnqueueDelete(ctx context.Context, goalID int, date string) (PendingMutation, error) {
	m, err := NewDelete(goalID, date)
	if err != nil {
		return PendingMutation{}, err
	}
	q.enqueue(ctx, m)
	return m, nil
}

func (q *Queue) send(ctx context.Context, m PendingMutation) error {
	switch m.Kind {
	case KindUpsert:
		return q.transport.UpsertLog(ctx, m.Payload.toggle())
	case KindDelete:
		return q.transport.DeleteLog(ctx, m.Payload.GoalID, m.Payload.Date)
	default:
		return fmt.Errorf("unknown mutation kind %q", m.Kind)
	}
}

// Drain delivers pending mutations head first, one at a time. The first
// failure stops it, leaving the failed mutation and everything behind it
// queued. Only one drain runs at a time, others get ErrDrainInProgress.
func (q *Queue) Drain(ctx context.Context) error {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return ErrDrainInProgress
	}
	if q.offline {
		q.mu.Unlock()
		return ErrOffline
	}
	q.draining = true
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.draining = false
		q.mu.Unlock()
	}()

	sent := 0
	for {
		q.mu.Lock()
		if len(q.state.PendingLogMutations) == 0 {
			q.lastErr = nil
			q.mu.Unlock()
			if sent > 0 {
				log.Debugf("sync queue: drained %d mutations", sent)
			}
			return nil
		}
		head := q.state.PendingLogMutations[0]
		q.mu.Unlock()

		if err := q.send(ctx, head); err != nil {
			err = fmt.Errorf("deliver %s: %w", head, err)
			q.mu.Lock()
			q.lastErr = err
			q.mu.Unlock()
			return err
		}
		sent++

		q.mu.Lock()
		if len(q.state.PendingLogMutations) > 0 && q.state.PendingLogMutations[0].ID == head.ID {
			q.state.PendingLogMutations = q.state.PendingLogMutations[1:]
		}
		q.settled = append(q.settled, settledMutation{
			mutation:  head,
			settledAt: q.now(),
		})
		q.lastErr = nil
		q.persistLocked(ctx)
		q.mu.Unlock()
	}
}

func (q *Queue) pruneSettledLocked() {
	if q.settleGrace < 0 {
		q.settled = nil
		return
	}
	cutoff := q.now().Add(-q.settleGrace)
	kept := q.settled[:0]
	for _, s := range q.settled {
		if s.settledAt.After(cutoff) {
			kept = append(kept, s)
		}
	}
	q.settled = kept
}

// Refresh drains what it can, fetches the authoritative snapshot for the
// last visibleDays and rebuilds the view model from it, replaying the
// recently settled and the still pending mutations on top. Pending
// mutations for goals the snapshot no longer has are dropped.
func (q *Queue) Refresh(ctx context.Context, visibleDays int) error {
	if err := q.Drain(ctx); err != nil && !errors.Is(err, ErrDrainInProgress) {
		log.Debugf("sync queue: refresh drain: %s", err)
	}

	goals, err := q.transport.FetchGoalsWithLogs(ctx, visibleDays)
	if err != nil {
		err = fmt.Errorf("fetch goals with logs: %w", err)
		q.mu.Lock()
		q.lastErr = err
		q.mu.Unlock()
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	dropped := q.dropOrphansLocked(goals)
	q.pruneSettledLocked()
	replay := make([]PendingMutation, 0, len(q.settled)+len(q.state.PendingLogMutations))
	for _, s := range q.settled {
		replay = append(replay, s.mutation)
	}
	replay = append(replay, q.state.PendingLogMutations...)

	if goals == nil {
		goals = []trainlog.GoalWithLogs{}
	}
	q.state.Goals = trainlog.SortGoals(Replay(goals, replay), q.state.SortByUrgency)
	fetchedAt := q.now()
	q.state.LastFetchedAt = &fetchedAt
	q.state.LastVisibleDays = visibleDays
	q.persistLocked(ctx)

	if dropped > 0 && len(q.state.PendingLogMutations) > 0 {
		q.trigger()
	}
	return nil
}

// dropOrphansLocked removes pending mutations whose goal is missing from the
// authoritative snapshot. The server rejects those for good and they would
// otherwise hold up everything queued behind them.
func (q *Queue) dropOrphansLocked(goals []trainlog.GoalWithLogs) int {
	known := make(map[int]struct{}, len(goals))
	for _, g := range goals {
		known[g.ID] = struct{}{}
	}

	kept := make([]PendingMutation, 0, len(q.state.PendingLogMutations))
	dropped := 0
	for _, m := range q.state.PendingLogMutations {
		if _, ok := known[m.Payload.GoalID]; ok {
			kept = append(kept, m)
			continue
		}
		log.Warnf("sync queue: dropping %s, goal %d no longer exists", m, m.Payload.GoalID)
		dropped++
	}
	if dropped > 0 {
		q.state.PendingLogMutations = kept
		if len(kept) == 0 {
			q.lastErr = nil
		}
	}
	return dropped
}

// SetOnline records connectivity; going back online triggers a drain.
func (q *Queue) SetOnline(online bool) {
	q.mu.Lock()
	cameOnline := q.offline && online
	q.offline = !online
	q.mu.Unlock()

	if cameOnline {
		log.Debugln("sync queue: back online")
		q.trigger()
	}
}

func (q *Queue) SetSortByUrgency(ctx context.Context, byUrgency bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.state.SortByUrgency = byUrgency
	q.state.Goals = trainlog.SortGoals(q.state.Goals, byUrgency)
	q.persistLocked(ctx)
}

// Run drains the queue whenever a drain was triggered, until ctx is done.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.kick:
			err := q.Drain(ctx)
			if err != nil && !errors.Is(err, ErrDrainInProgress) && !errors.Is(err, ErrOffline) {
				log.Warnf("sync queue: %s", err)
			}
		}
	}
}

// Snapshot returns a copy of the current view model.
func (q *Queue) Snapshot() []trainlog.GoalWithLogs {
	q.mu.Lock()
	defer q.mu.Unlock()
	return cloneGoals(q.state.Goals)
}

func (q *Queue) IsDraining() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.draining
}

func (q *Queue) LastError() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastErr
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.state.PendingLogMutations)
}

func (q *Queue) PendingMutations() []PendingMutation {
	q.mu.Lock()
	defer q.mu.Unlock()
	pending := make([]PendingMutation, len(q.state.PendingLogMutations))
	copy(pending, q.state.PendingLogMutations)
	return pending
}

func (q *Queue) SortByUrgency() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state.SortByUrgency
}

func (q *Queue) LastFetchedAt() *time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state.LastFetchedAt
}

func (q *Queue) Status() Status {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case q.draining:
		return StatusDraining
	case len(q.state.PendingLogMutations) == 0:
		return StatusIdle
	default:
		return StatusBlocked
	}
}
