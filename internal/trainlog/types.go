package trainlog

import (
	"time"
)

var goalColors = map[string]bool{
	"red":    true,
	"yellow": true,
	"green":  true,
	"blue":   true,
	"teal":   true,
	"violet": true,
	"orange": true,
}

const DefaultGoalColor = "red"

func IsValidColor(color string) bool {
	return goalColors[color]
}

type Goal struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// GoalUpdate holds the goal fields to change; nil fields stay as they are.
type GoalUpdate struct {
	Name         *string `json:"name,omitempty"`
	Color        *string `json:"color,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

func (u GoalUpdate) Empty() bool {
	return u.Name == nil && u.Color == nil && u.DisplayOrder == nil
}

type Exercise struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GoalExerciseLink struct {
	ID         int       `json:"id"`
	GoalID     int       `json:"goal_id"`
	ExerciseID int       `json:"exercise_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// LogEntry is the state of one goal on one day. Weight and reps are copied
// from the exercise log the entry references.
type LogEntry struct {
	Completed  bool     `json:"completed"`
	ExerciseID *int     `json:"exercise_id,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
}

type HistoryEntry struct {
	Weight *float64 `json:"weight,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
	Date   string   `json:"date"`
}

type ExerciseHistory struct {
	MaxWeight *HistoryEntry `json:"maxWeight"`
	LastLog   *HistoryEntry `json:"lastLog"`
}

type ExerciseWithHistory struct {
	Exercise
	History *ExerciseHistory `json:"history,omitempty"`
}

// GoalWithLogs is a goal with its logs keyed by date (YYYY-MM-DD), the
// exercises linked to it and the exercise most recently used to complete it.
type GoalWithLogs struct {
	Goal
	Logs                    map[string]LogEntry   `json:"logs"`
	LinkedExercises         []ExerciseWithHistory `json:"linkedExercises"`
	LastCompletedExerciseID *int                  `json:"lastCompletedExerciseId,omitempty"`
}

// LastCompletedDate returns the latest date with a completed log, or "" when
// the goal was never completed.
func (g GoalWithLogs) LastCompletedDate() string {
	last := ""
	for date, entry := range g.Logs {
		if entry.Completed && date > last {
			last = date
		}
	}
	return last
}

// ToggleLog is the body of a log upsert. An exercise is optional, weight
// and reps only make sense together with one.
type ToggleLog struct {
	GoalID     int      `json:"goal_id"`
	Date       string   `json:"date"`
	ExerciseID *int     `json:"exercise_id,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
}

type WeightLog struct {
	Date   string   `json:"date"`
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

type LogsResponse struct {
	Goals []GoalWithLogs `json:"goals"`
}

type ExerciseStatsResponse struct {
	Logs []WeightLog `json:"logs"`
}

type LastExerciseResponse struct {
	ExerciseID *int `json:"exercise_id"`
}
