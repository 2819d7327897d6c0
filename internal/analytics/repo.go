package analytics

import (
	"context"
	"time"

	"github.com/2beens/trainlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo reads the completion and weight log rows the engine aggregates.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CompletionsInRange(ctx context.Context, start *time.Time, end time.Time, goalID *int) (_ []CompletionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.completions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT goal_id, date
		FROM goal_logs
		WHERE completed = true
			AND ($1::date IS NULL OR date >= $1::date)
			AND date <= $2::date
			AND ($3::int IS NULL OR goal_id = $3::int)
		ORDER BY date ASC, id ASC;`,
		start, end, goalID,
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (CompletionRecord, error) {
		var c CompletionRecord
		err := row.Scan(&c.GoalID, &c.Date)
		return c, err
	})
}

func (r *Repo) WeightLogsInRange(ctx context.Context, start *time.Time, end time.Time, exerciseID *int) (_ []WeightRepEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.weightlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, date, weight::float8, reps
		FROM exercise_logs
		WHERE weight IS NOT NULL
			AND ($1::date IS NULL OR date >= $1::date)
			AND date <= $2::date
			AND ($3::int IS NULL OR exercise_id = $3::int)
		ORDER BY exercise_id ASC, date ASC;`,
		start, end, exerciseID,
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (WeightRepEntry, error) {
		var e WeightRepEntry
		err := row.Scan(&e.ExerciseID, &e.Date, &e.Weight, &e.Reps)
		return e, err
	})
}

func (r *Repo) earliest(ctx context.Context, sql string) (*time.Time, error) {
	var earliest *time.Time
	if err := r.db.QueryRow(ctx, sql).Scan(&earliest); err != nil {
		return nil, err
	}
	return earliest, nil
}

func (r *Repo) EarliestCompletionDate(ctx context.Context) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.earliestcompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return r.earliest(ctx, `SELECT MIN(date) FROM goal_logs WHERE completed = true;`)
}

func (r *Repo) EarliestWeightLogDate(ctx context.Context) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.earliestweightlog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return r.earliest(ctx, `SELECT MIN(date) FROM exercise_logs WHERE weight IS NOT NULL;`)
}

func (r *Repo) Goals(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.goals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, color, display_order FROM goals ORDER BY display_order ASC, id ASC;`,
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Goal, error) {
		var g Goal
		err := row.Scan(&g.ID, &g.Name, &g.Color, &g.DisplayOrder)
		return g, err
	})
}

// ExercisesWithGoals lists exercises ordered by the smallest display order
// of their linked goals (unlinked last), then by name.
func (r *Repo) ExercisesWithGoals(ctx context.Context, exerciseID *int) (_ []ExerciseWithGoals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.name,
			COALESCE(
				ARRAY_AGG(g.name ORDER BY g.display_order, g.id) FILTER (WHERE g.id IS NOT NULL),
				'{}'
			) AS goal_names
		FROM exercises e
		LEFT JOIN goal_exercises ge ON ge.exercise_id = e.id
		LEFT JOIN goals g ON g.id = ge.goal_id
		WHERE ($1::int IS NULL OR e.id = $1::int)
		GROUP BY e.id, e.name
		ORDER BY COALESCE(MIN(g.display_order), 9999), e.name;`,
		exerciseID,
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ExerciseWithGoals, error) {
		var e ExerciseWithGoals
		err := row.Scan(&e.ID, &e.Name, &e.GoalNames)
		return e, err
	})
}
