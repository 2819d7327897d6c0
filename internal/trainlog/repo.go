package trainlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainlog/internal/dates"
	"github.com/2beens/trainlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrLinkNotFound     = errors.New("link not found")
	ErrAlreadyLinked    = errors.New("exercise already linked to this goal")
	ErrNothingToUpdate  = errors.New("no fields to update")
	ErrUnknownReference = errors.New("goal or exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanGoal(row pgx.CollectableRow) (Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.Name, &g.Color, &g.DisplayOrder, &g.CreatedAt)
	return g, err
}

func scanExercise(row pgx.CollectableRow) (Exercise, error) {
	var e Exercise
	err := row.Scan(&e.ID, &e.Name, &e.CreatedAt)
	return e, err
}

func (r *Repo) ListGoals(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, color, display_order, created_at FROM goals ORDER BY display_order ASC, id ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("goals [query]: %w", err)
	}
	return pgx.CollectRows(rows, scanGoal)
}

// AddGoal appends a new goal after all existing ones.
func (r *Repo) AddGoal(ctx context.Context, name, color string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO goals (name, color, display_order)
			VALUES ($1, $2, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM goals))
		RETURNING id, name, color, display_order, created_at;`,
		name, color,
	)
	if err != nil {
		return nil, fmt.Errorf("add goal [query]: %w", err)
	}

	goal, err := pgx.CollectExactlyOneRow(rows, scanGoal)
	if err != nil {
		return nil, fmt.Errorf("add goal [collect]: %w", err)
	}
	return &goal, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, id int, update GoalUpdate) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	if update.Empty() {
		return nil, ErrNothingToUpdate
	}

	rows, err := r.db.Query(
		ctx,
		`UPDATE goals SET
			name = COALESCE($2, name),
			color = COALESCE($3, color),
			display_order = COALESCE($4, display_order)
		WHERE id = $1
		RETURNING id, name, color, display_order, created_at;`,
		id, update.Name, update.Color, update.DisplayOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("update goal [query]: %w", err)
	}

	goal, err := pgx.CollectExactlyOneRow(rows, scanGoal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update goal [collect]: %w", err)
	}
	return &goal, nil
}

func (r *Repo) DeleteGoal(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// ReorderGoals sets display order 1..n following the given goal ids.
func (r *Repo) ReorderGoals(ctx context.Context, goalIDs []int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.goals.reorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goals", len(goalIDs)))

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for i, id := range goalIDs {
			tag, err := tx.Exec(ctx, `UPDATE goals SET display_order = $2 WHERE id = $1;`, id, i+1)
			if err != nil {
				return fmt.Errorf("reorder goal %d: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("reorder goal %d: %w", id, ErrGoalNotFound)
			}
		}
		return nil
	})
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM exercises ORDER BY name ASC, id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	return pgx.CollectRows(rows, scanExercise)
}

func (r *Repo) AddExercise(ctx context.Context, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercises (name) VALUES ($1) RETURNING id, name, created_at;`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("add exercise [query]: %w", err)
	}

	exercise, err := pgx.CollectExactlyOneRow(rows, scanExercise)
	if err != nil {
		return nil, fmt.Errorf("add exercise [collect]: %w", err)
	}
	return &exercise, nil
}

func (r *Repo) RenameExercise(ctx context.Context, id int, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.exercises.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	rows, err := r.db.Query(
		ctx,
		`UPDATE exercises SET name = $2 WHERE id = $1 RETURNING id, name, created_at;`,
		id, name,
	)
	if err != nil {
		return nil, fmt.Errorf("rename exercise [query]: %w", err)
	}

	exercise, err := pgx.CollectExactlyOneRow(rows, scanExercise)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rename exercise [collect]: %w", err)
	}
	return &exercise, nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) LinkedExercises(ctx context.Context, goalID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.links.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.name, e.created_at
		FROM exercises e
		INNER JOIN goal_exercises ge ON e.id = ge.exercise_id
		WHERE ge.goal_id = $1
		ORDER BY e.name ASC;`,
		goalID,
	)
	if err != nil {
		return nil, fmt.Errorf("linked exercises [query]: %w", err)
	}
	return pgx.CollectRows(rows, scanExercise)
}

func (r *Repo) exists(ctx context.Context, tx pgx.Tx, sql string, id int) (bool, error) {
	var found bool
	if err := tx.QueryRow(ctx, sql, id).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (r *Repo) LinkExercise(ctx context.Context, goalID, exerciseID int) (_ *GoalExerciseLink, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.links.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("goal.id", goalID),
		attribute.Int("exercise.id", exerciseID),
	)

	var link GoalExerciseLink
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		found, err := r.exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM goals WHERE id = $1);`, goalID)
		if err != nil {
			return fmt.Errorf("check goal: %w", err)
		}
		if !found {
			return ErrGoalNotFound
		}

		found, err = r.exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM exercises WHERE id = $1);`, exerciseID)
		if err != nil {
			return fmt.Errorf("check exercise: %w", err)
		}
		if !found {
			return ErrExerciseNotFound
		}

		return tx.QueryRow(
			ctx,
			`INSERT INTO goal_exercises (goal_id, exercise_id) VALUES ($1, $2)
			RETURNING id, goal_id, exercise_id, created_at;`,
			goalID, exerciseID,
		).Scan(&link.ID, &link.GoalID, &link.ExerciseID, &link.CreatedAt)
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return nil, ErrAlreadyLinked
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *Repo) UnlinkExercise(ctx context.Context, goalID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.links.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM goal_exercises WHERE goal_id = $1 AND exercise_id = $2;`,
		goalID, exerciseID,
	)
	if err != nil {
		return fmt.Errorf("unlink exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLinkNotFound
	}
	return nil
}

type historyRow struct {
	ExerciseID int
	Entry      HistoryEntry
}

func scanHistoryRow(row pgx.CollectableRow) (historyRow, error) {
	var h historyRow
	var date time.Time
	if err := row.Scan(&h.ExerciseID, &h.Entry.Weight, &h.Entry.Reps, &date); err != nil {
		return h, err
	}
	h.Entry.Date = dates.Format(date)
	return h, nil
}

// histories returns the max weight and last log entries of every exercise
// linked to at least one goal.
func (r *Repo) histories(ctx context.Context) (map[int]*ExerciseHistory, error) {
	maxRows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT ON (exercise_id) exercise_id, weight::float8, reps, date
		FROM exercise_logs
		WHERE weight IS NOT NULL
		ORDER BY exercise_id, weight DESC, date DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("max weights [query]: %w", err)
	}
	maxWeights, err := pgx.CollectRows(maxRows, scanHistoryRow)
	if err != nil {
		return nil, fmt.Errorf("max weights [collect]: %w", err)
	}

	lastRows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT ON (exercise_id) exercise_id, weight::float8, reps, date
		FROM exercise_logs
		ORDER BY exercise_id, date DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("last logs [query]: %w", err)
	}
	lastLogs, err := pgx.CollectRows(lastRows, scanHistoryRow)
	if err != nil {
		return nil, fmt.Errorf("last logs [collect]: %w", err)
	}

	histories := make(map[int]*ExerciseHistory)
	get := func(id int) *ExerciseHistory {
		if histories[id] == nil {
			histories[id] = &ExerciseHistory{}
		}
		return histories[id]
	}
	for _, h := range maxWeights {
		entry := h.Entry
		get(h.ExerciseID).MaxWeight = &entry
	}
	for _, h := range lastLogs {
		entry := h.Entry
		get(h.ExerciseID).LastLog = &entry
	}
	return histories, nil
}

// GoalsWithLogs builds the goal view for [start, end]: every goal in display
// order with its logs in range, its linked exercises and their history.
func (r *Repo) GoalsWithLogs(ctx context.Context, start, end time.Time) (_ []GoalWithLogs, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.logs.goals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("start", dates.Format(start)),
		attribute.String("end", dates.Format(end)),
	)

	goals, err := r.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]GoalWithLogs, len(goals))
	byID := make(map[int]*GoalWithLogs, len(goals))
	for i, g := range goals {
		result[i] = GoalWithLogs{
			Goal:            g,
			Logs:            make(map[string]LogEntry),
			LinkedExercises: []ExerciseWithHistory{},
		}
		byID[g.ID] = &result[i]
	}

	logRows, err := r.db.Query(
		ctx,
		`SELECT gl.goal_id, gl.date, gl.completed, gl.exercise_id, el.weight::float8, el.reps
		FROM goal_logs gl
		LEFT JOIN exercise_logs el ON el.exercise_id = gl.exercise_id AND el.date = gl.date
		WHERE gl.date >= $1::date AND gl.date <= $2::date;`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("goal logs [query]: %w", err)
	}
	defer logRows.Close()

	for logRows.Next() {
		var (
			goalID int
			date   time.Time
			entry  LogEntry
		)
		if err := logRows.Scan(&goalID, &date, &entry.Completed, &entry.ExerciseID, &entry.Weight, &entry.Reps); err != nil {
			return nil, fmt.Errorf("goal logs [rows scan]: %w", err)
		}
		if g, ok := byID[goalID]; ok {
			g.Logs[dates.Format(date)] = entry
		}
	}
	if err := logRows.Err(); err != nil {
		return nil, fmt.Errorf("goal logs [rows error]: %w", err)
	}

	histories, err := r.histories(ctx)
	if err != nil {
		return nil, err
	}

	linkRows, err := r.db.Query(
		ctx,
		`SELECT ge.goal_id, e.id, e.name, e.created_at
		FROM goal_exercises ge
		INNER JOIN exercises e ON e.id = ge.exercise_id
		ORDER BY e.name ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("goal links [query]: %w", err)
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var (
			goalID   int
			exercise Exercise
		)
		if err := linkRows.Scan(&goalID, &exercise.ID, &exercise.Name, &exercise.CreatedAt); err != nil {
			return nil, fmt.Errorf("goal links [rows scan]: %w", err)
		}
		g, ok := byID[goalID]
		if !ok {
			continue
		}
		history := histories[exercise.ID]
		if history == nil {
			history = &ExerciseHistory{}
		}
		g.LinkedExercises = append(g.LinkedExercises, ExerciseWithHistory{
			Exercise: exercise,
			History:  history,
		})
	}
	if err := linkRows.Err(); err != nil {
		return nil, fmt.Errorf("goal links [rows error]: %w", err)
	}

	lastRows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT ON (goal_id) goal_id, exercise_id
		FROM goal_logs
		WHERE exercise_id IS NOT NULL
		ORDER BY goal_id, date DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("last exercises [query]: %w", err)
	}
	defer lastRows.Close()

	for lastRows.Next() {
		var goalID, exerciseID int
		if err := lastRows.Scan(&goalID, &exerciseID); err != nil {
			return nil, fmt.Errorf("last exercises [rows scan]: %w", err)
		}
		if g, ok := byID[goalID]; ok {
			g.LastCompletedExerciseID = &exerciseID
		}
	}
	if err := lastRows.Err(); err != nil {
		return nil, fmt.Errorf("last exercises [rows error]: %w", err)
	}

	return result, nil
}

// UpsertLog marks the goal completed on the given date and, with an
// exercise, stores its weight and reps for that date. Both rows are
// overwritten as a whole.
func (r *Repo) UpsertLog(ctx context.Context, toggle ToggleLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.logs.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("goal.id", toggle.GoalID),
		attribute.String("date", toggle.Date),
	)

	date, err := dates.Parse(toggle.Date)
	if err != nil {
		return err
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO goal_logs (goal_id, date, completed, exercise_id)
				VALUES ($1, $2, true, $3)
			ON CONFLICT (goal_id, date) DO UPDATE
				SET completed = true,
					exercise_id = EXCLUDED.exercise_id,
					updated_at = CURRENT_TIMESTAMP;`,
			toggle.GoalID, date, toggle.ExerciseID,
		)
		if err != nil {
			return fmt.Errorf("upsert goal log: %w", err)
		}

		if toggle.ExerciseID == nil {
			return nil
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO exercise_logs (exercise_id, date, weight, reps)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (exercise_id, date) DO UPDATE
				SET weight = EXCLUDED.weight,
					reps = EXCLUDED.reps,
					updated_at = CURRENT_TIMESTAMP;`,
			*toggle.ExerciseID, date, toggle.Weight, toggle.Reps,
		)
		if err != nil {
			return fmt.Errorf("upsert exercise log: %w", err)
		}
		return nil
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrUnknownReference, pgErr.ConstraintName)
	}
	return err
}

// DeleteLog removes the goal log and the exercise log it references.
// Deleting a missing log is not an error.
func (r *Repo) DeleteLog(ctx context.Context, goalID int, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("goal.id", goalID),
		attribute.String("date", dates.Format(date)),
	)

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(
			ctx,
			`DELETE FROM goal_logs WHERE goal_id = $1 AND date = $2 RETURNING exercise_id;`,
			goalID, date,
		)
		if err != nil {
			return fmt.Errorf("delete goal log: %w", err)
		}
		exerciseIDs, err := pgx.CollectRows(rows, pgx.RowTo[*int])
		if err != nil {
			return fmt.Errorf("delete goal log [collect]: %w", err)
		}

		for _, exerciseID := range exerciseIDs {
			if exerciseID == nil {
				continue
			}
			if _, err := tx.Exec(
				ctx,
				`DELETE FROM exercise_logs WHERE exercise_id = $1 AND date = $2;`,
				*exerciseID, date,
			); err != nil {
				return fmt.Errorf("delete exercise log: %w", err)
			}
		}
		return nil
	})
}

func (r *Repo) ExerciseHistory(ctx context.Context, exerciseID int) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.logs.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	one := func(sql string) (*HistoryEntry, error) {
		rows, err := r.db.Query(ctx, sql, exerciseID)
		if err != nil {
			return nil, err
		}
		h, err := pgx.CollectExactlyOneRow(rows, scanHistoryRow)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &h.Entry, nil
	}

	var history ExerciseHistory
	history.MaxWeight, err = one(
		`SELECT exercise_id, weight::float8, reps, date
		FROM exercise_logs
		WHERE exercise_id = $1 AND weight IS NOT NULL
		ORDER BY weight DESC, date DESC
		LIMIT 1;`,
	)
	if err != nil {
		return nil, fmt.Errorf("max weight: %w", err)
	}

	history.LastLog, err = one(
		`SELECT exercise_id, weight::float8, reps, date
		FROM exercise_logs
		WHERE exercise_id = $1
		ORDER BY date DESC
		LIMIT 1;`,
	)
	if err != nil {
		return nil, fmt.Errorf("last log: %w", err)
	}

	return &history, nil
}

// LastExercise returns the exercise most recently used to complete the
// goal, or nil when none was ever used.
func (r *Repo) LastExercise(ctx context.Context, goalID int) (_ *int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.logs.last_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	var exerciseID int
	err = r.db.QueryRow(
		ctx,
		`SELECT exercise_id
		FROM goal_logs
		WHERE goal_id = $1 AND exercise_id IS NOT NULL
		ORDER BY date DESC
		LIMIT 1;`,
		goalID,
	).Scan(&exerciseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last exercise: %w", err)
	}
	return &exerciseID, nil
}

// ExerciseWeightLogs lists the logs of one exercise that carry a weight,
// oldest first.
func (r *Repo) ExerciseWeightLogs(ctx context.Context, exerciseID int) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.exercises.weight_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, weight::float8, reps
		FROM exercise_logs
		WHERE exercise_id = $1 AND weight IS NOT NULL
		ORDER BY date ASC;`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("weight logs [query]: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (WeightLog, error) {
		var (
			l    WeightLog
			date time.Time
		)
		if err := row.Scan(&date, &l.Weight, &l.Reps); err != nil {
			return l, err
		}
		l.Date = dates.Format(date)
		return l, nil
	})
}
