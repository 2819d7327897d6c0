package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=analytics_test

var (
	ErrInvalidRange = errors.New("start date after end date")
	ErrInvalidID    = errors.New("invalid id")
)

// dataSource is the read side of the log store the engine works on.
// A nil start means no lower bound; a nil id means all goals/exercises.
type dataSource interface {
	CompletionsInRange(ctx context.Context, start *time.Time, end time.Time, goalID *int) ([]CompletionRecord, error)
	WeightLogsInRange(ctx context.Context, start *time.Time, end time.Time, exerciseID *int) ([]WeightRepEntry, error)
	EarliestCompletionDate(ctx context.Context) (*time.Time, error)
	EarliestWeightLogDate(ctx context.Context) (*time.Time, error)
	Goals(ctx context.Context) ([]Goal, error)
	ExercisesWithGoals(ctx context.Context, exerciseID *int) ([]ExerciseWithGoals, error)
}

// Filter is the raw, unvalidated analytics request. Empty dates fall back
// to their per report defaults.
type Filter struct {
	StartDate  string
	EndDate    string
	GoalID     *int
	ExerciseID *int
}

type Service struct {
	source dataSource
	now    func() time.Time
}

func NewService(source dataSource) *Service {
	return &Service{
		source: source,
		now:    time.Now,
	}
}

// NewServiceWithClock is NewService with a fixed notion of "today".
func NewServiceWithClock(source dataSource, now func() time.Time) *Service {
	return &Service{
		source: source,
		now:    now,
	}
}

func (s *Service) today() time.Time {
	return dates.Truncate(s.now())
}

type resolvedRange struct {
	start time.Time
	end   time.Time
	// explicitStart is false when start has to come from a default
	explicitStart bool
}

func (s *Service) parseRange(f Filter) (resolvedRange, error) {
	var r resolvedRange

	r.end = s.today()
	if f.EndDate != "" {
		end, err := dates.Parse(f.EndDate)
		if err != nil {
			return r, fmt.Errorf("end date: %w", err)
		}
		r.end = end
	}

	if f.StartDate != "" {
		start, err := dates.Parse(f.StartDate)
		if err != nil {
			return r, fmt.Errorf("start date: %w", err)
		}
		if start.After(r.end) {
			return r, fmt.Errorf("%w: %s > %s", ErrInvalidRange, f.StartDate, dates.Format(r.end))
		}
		r.start = start
		r.explicitStart = true
	}

	if f.GoalID != nil && *f.GoalID <= 0 {
		return r, fmt.Errorf("%w: goal id %d", ErrInvalidID, *f.GoalID)
	}
	if f.ExerciseID != nil && *f.ExerciseID <= 0 {
		return r, fmt.Errorf("%w: exercise id %d", ErrInvalidID, *f.ExerciseID)
	}

	return r, nil
}

// defaultStart falls back to end when there is no earliest date, or when
// the earliest date is past end.
func defaultStart(earliest *time.Time, end time.Time) time.Time {
	if earliest == nil || earliest.After(end) {
		return end
	}
	return dates.Truncate(*earliest)
}

// IsValidationError reports whether err came from a malformed filter.
func IsValidationError(err error) bool {
	return errors.Is(err, dates.ErrInvalidDate) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidID)
}

func (s *Service) Completion(ctx context.Context, f Filter) (_ *CompletionAnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r, err := s.parseRange(f)
	if err != nil {
		return nil, err
	}

	if !r.explicitStart {
		earliest, err := s.source.EarliestCompletionDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("earliest completion date: %w", err)
		}
		r.start = defaultStart(earliest, r.end)
	}
	span.SetAttributes(
		attribute.String("start", dates.Format(r.start)),
		attribute.String("end", dates.Format(r.end)),
	)

	goals, err := s.source.Goals(ctx)
	if err != nil {
		return nil, fmt.Errorf("goals: %w", err)
	}

	records, err := s.source.CompletionsInRange(ctx, &r.start, r.end, f.GoalID)
	if err != nil {
		return nil, fmt.Errorf("completions in range: %w", err)
	}

	today := s.today()
	return &CompletionAnalyticsResponse{
		Summary:     Summarize(records, r.start, r.end, today),
		ByGoal:      ByGoal(goals, records, r.start, r.end, today),
		Trends:      WeeklyTrends(records, r.start, r.end),
		MonthlyDays: MonthlyTrainingDays(records, r.start, r.end, today),
		DateRange: DateRange{
			StartDate: dates.Format(r.start),
			EndDate:   dates.Format(r.end),
		},
	}, nil
}

func (s *Service) Progression(ctx context.Context, f Filter) (_ *ProgressionAnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r, err := s.parseRange(f)
	if err != nil {
		return nil, err
	}

	if !r.explicitStart {
		earliest, err := s.source.EarliestWeightLogDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("earliest weight log date: %w", err)
		}
		r.start = defaultStart(earliest, r.end)
	}

	exercises, err := s.source.ExercisesWithGoals(ctx, f.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercises with goals: %w", err)
	}

	logs, err := s.source.WeightLogsInRange(ctx, &r.start, r.end, f.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("weight logs in range: %w", err)
	}

	logsByExercise := make(map[int][]WeightRepEntry)
	for _, l := range logs {
		logsByExercise[l.ExerciseID] = append(logsByExercise[l.ExerciseID], l)
	}

	progressions := make([]ExerciseProgression, 0, len(exercises))
	for _, e := range exercises {
		if p := Progression(e, logsByExercise[e.ID]); p != nil {
			progressions = append(progressions, *p)
		}
	}
	span.SetAttributes(attribute.Int("exercises", len(progressions)))

	return &ProgressionAnalyticsResponse{
		Exercises: progressions,
		DateRange: DateRange{
			StartDate: dates.Format(r.start),
			EndDate:   dates.Format(r.end),
		},
	}, nil
}

func (s *Service) Heatmap(ctx context.Context, f Filter) (_ *HeatmapAnalyticsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.heatmap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r, err := s.parseRange(f)
	if err != nil {
		return nil, err
	}
	if !r.explicitStart {
		r.start = dates.YearBefore(r.end)
	}

	records, err := s.source.CompletionsInRange(ctx, &r.start, r.end, f.GoalID)
	if err != nil {
		return nil, fmt.Errorf("completions in range: %w", err)
	}

	heatmap := Heatmap(records, r.start, r.end)
	return &heatmap, nil
}
