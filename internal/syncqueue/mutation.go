package syncqueue

import (
	"fmt"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/trainlog"

	"github.com/google/uuid"
)

type MutationKind string

const (
	KindUpsert MutationKind = "upsert"
	KindDelete MutationKind = "delete"
)

// LogTarget is what a log upsert completes: either the goal alone
// (GoalOnly) or the goal through one of its exercises (GoalWithExercise).
type LogTarget interface {
	Goal() int
	payload(date string) Payload
}

type GoalOnly struct {
	GoalID int
}

func (t GoalOnly) Goal() int {
	return t.GoalID
}

func (t GoalOnly) payload(date string) Payload {
	return Payload{
		GoalID: t.GoalID,
		Date:   date,
	}
}

type GoalWithExercise struct {
	GoalID     int
	ExerciseID int
	Weight     *float64
	Reps       *int
}

func (t GoalWithExercise) Goal() int {
	return t.GoalID
}

func (t GoalWithExercise) payload(date string) Payload {
	exerciseID := t.ExerciseID
	return Payload{
		GoalID:     t.GoalID,
		Date:       date,
		ExerciseID: &exerciseID,
		Weight:     t.Weight,
		Reps:       t.Reps,
	}
}

// Payload is the persisted form of a mutation. Delete payloads only carry
// the goal and the date.
type Payload struct {
	GoalID     int      `json:"goalId"`
	Date       string   `json:"date"`
	ExerciseID *int     `json:"exerciseId,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
}

// Target turns the payload back into its LogTarget.
func (p Payload) Target() LogTarget {
	if p.ExerciseID == nil {
		return GoalOnly{GoalID: p.GoalID}
	}
	return GoalWithExercise{
		GoalID:     p.GoalID,
		ExerciseID: *p.ExerciseID,
		Weight:     p.Weight,
		Reps:       p.Reps,
	}
}

func (p Payload) toggle() trainlog.ToggleLog {
	return trainlog.ToggleLog{
		GoalID:     p.GoalID,
		Date:       p.Date,
		ExerciseID: p.ExerciseID,
		Weight:     p.Weight,
		Reps:       p.Reps,
	}
}

type PendingMutation struct {
	ID      uuid.UUID    `json:"id"`
	Kind    MutationKind `json:"type"`
	Payload Payload      `json:"payload"`
}

func NewUpsert(date string, target LogTarget) (PendingMutation, error) {
	if target == nil {
		return PendingMutation{}, fmt.Errorf("upsert: missing log target")
	}
	p := target.payload(date)
	if err := p.toggle().Validate(); err != nil {
		return PendingMutation{}, fmt.Errorf("upsert: %w", err)
	}
	return PendingMutation{
		ID:      uuid.New(),
		Kind:    KindUpsert,
		Payload: p,
	}, nil
}

func NewDelete(goalID int, date string) (PendingMutation, error) {
	if goalID <= 0 {
		return PendingMutation{}, fmt.Errorf("delete: invalid goal id %d", goalID)
	}
	if _, err := dates.Parse(date); err != nil {
		return PendingMutation{}, fmt.Errorf("delete: %w", err)
	}
	return PendingMutation{
		ID:   uuid.New(),
		Kind: KindDelete,
		Payload: Payload{
			GoalID: goalID,
			Date:   date,
		},
	}, nil
}

func (m PendingMutation) String() string {
	return fmt.Sprintf("%s[%s] goal=%d date=%s", m.Kind, m.ID, m.Payload.GoalID, m.Payload.Date)
}
