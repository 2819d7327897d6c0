package analytics

import "time"

// CompletionRecord is one completed goal-day.
type CompletionRecord struct {
	GoalID int
	Date   time.Time
}

// WeightRepEntry is one exercise log row. Weight and reps are optional.
type WeightRepEntry struct {
	ExerciseID int
	Date       time.Time
	Weight     *float64
	Reps       *int
}

type Goal struct {
	ID           int
	Name         string
	Color        string
	DisplayOrder int
}

// ExerciseWithGoals is an exercise together with the names of the goals it
// is linked to, ordered by goal display order.
type ExerciseWithGoals struct {
	ID        int
	Name      string
	GoalNames []string
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Streak struct {
	Current int
	Longest int
}

type CompletionSummary struct {
	TotalWeeks       int     `json:"totalWeeks"`
	ActiveWeeks      int     `json:"activeWeeks"`
	TotalCompletions int     `json:"totalCompletions"`
	CompletionRate   int     `json:"completionRate"`
	CurrentStreak    int     `json:"currentStreak"`
	LongestStreak    int     `json:"longestStreak"`
	AveragePerWeek   float64 `json:"averagePerWeek"`
}

type GoalCompletionStats struct {
	GoalID           int     `json:"goalId"`
	GoalName         string  `json:"goalName"`
	GoalColor        string  `json:"goalColor"`
	TotalCompletions int     `json:"totalCompletions"`
	CompletionRate   int     `json:"completionRate"`
	CurrentStreak    int     `json:"currentStreak"`
	LongestStreak    int     `json:"longestStreak"`
	LastCompleted    *string `json:"lastCompleted"`
}

type CompletionTrend struct {
	Date           string  `json:"date"`
	Completions    int     `json:"completions"`
	GoalsCompleted []int   `json:"goalsCompleted"`
	Trend          float64 `json:"trend"`
}

type MonthlyTrainingDays struct {
	Month        string  `json:"month"`
	TrainingDays int     `json:"trainingDays"`
	Trend        float64 `json:"trend"`
}

type CompletionAnalyticsResponse struct {
	Summary     CompletionSummary     `json:"summary"`
	ByGoal      []GoalCompletionStats `json:"byGoal"`
	Trends      []CompletionTrend     `json:"trends"`
	MonthlyDays []MonthlyTrainingDays `json:"monthlyDays"`
	DateRange   DateRange             `json:"dateRange"`
}

type ProgressionEntry struct {
	Date         string   `json:"date"`
	Weight       *float64 `json:"weight"`
	Reps         *int     `json:"reps"`
	Estimated1RM *float64 `json:"estimated1RM"`
	Trend        *float64 `json:"trend"`
}

type ExerciseStats struct {
	MaxWeight           *float64 `json:"maxWeight"`
	MaxWeightDate       *string  `json:"maxWeightDate"`
	Max1RM              *float64 `json:"max1RM"`
	Max1RMDate          *string  `json:"max1RMDate"`
	AverageWeight       *float64 `json:"averageWeight"`
	AverageReps         *float64 `json:"averageReps"`
	WeightChange        *float64 `json:"weightChange"`
	WeightChangePercent *int     `json:"weightChangePercent"`
}

type ExerciseProgression struct {
	ExerciseID    int                `json:"exerciseId"`
	ExerciseName  string             `json:"exerciseName"`
	GoalNames     []string           `json:"goalNames"`
	TotalSessions int                `json:"totalSessions"`
	Progression   []ProgressionEntry `json:"progression"`
	Stats         ExerciseStats      `json:"stats"`
}

type ProgressionAnalyticsResponse struct {
	Exercises []ExerciseProgression `json:"exercises"`
	DateRange DateRange             `json:"dateRange"`
}

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type HeatmapAnalyticsResponse struct {
	Days      []HeatmapDay `json:"days"`
	DateRange DateRange    `json:"dateRange"`
	MaxCount  int          `json:"maxCount"`
	TotalDays int          `json:"totalDays"`
}
