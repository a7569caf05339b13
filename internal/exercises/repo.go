package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/caessy/tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseTypeNotFound = errors.New("exercise type not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exerciseType ExerciseType) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exerciseType.name", exerciseType.Name))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise_types (name, muscle_group)
			VALUES ($1, $2)
			RETURNING id, created_at
		`,
		exerciseType.Name,
		exerciseType.MuscleGroup,
	).Scan(&exerciseType.ID, &exerciseType.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add exercise type [query row]: %w", err)
	}

	return &exerciseType, nil
}

func (r *Repo) GetByName(ctx context.Context, name string) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get_by_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exerciseType ExerciseType
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, name, muscle_group, created_at
			FROM exercise_types
			WHERE name = $1
		`,
		name,
	).Scan(
		&exerciseType.ID,
		&exerciseType.Name,
		&exerciseType.MuscleGroup,
		&exerciseType.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseTypeNotFound
		}
		return nil, fmt.Errorf("exercise type [query row]: %w", err)
	}

	return &exerciseType, nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, muscle_group, created_at
			FROM exercise_types
			ORDER BY name
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	var exerciseTypes []ExerciseType
	for rows.Next() {
		var exerciseType ExerciseType
		err := rows.Scan(
			&exerciseType.ID,
			&exerciseType.Name,
			&exerciseType.MuscleGroup,
			&exerciseType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, exerciseType)
	}

	return exerciseTypes, nil
}

// ListUsed returns the distinct exercise types appearing in the
// workout logs of the given user.
func (r *Repo) ListUsed(ctx context.Context, userID int) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_used")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT et.id, et.name, et.muscle_group, et.created_at
			FROM exercise_logs el
			JOIN workouts w ON el.workout_id = w.id
			JOIN exercise_types et ON el.exercise_type_id = et.id
			WHERE w.user_id = $1
			ORDER BY et.name
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("used exercise types [query]: %w", err)
	}
	defer rows.Close()

	var exerciseTypes []ExerciseType
	for rows.Next() {
		var exerciseType ExerciseType
		err := rows.Scan(
			&exerciseType.ID,
			&exerciseType.Name,
			&exerciseType.MuscleGroup,
			&exerciseType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("used exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, exerciseType)
	}

	return exerciseTypes, nil
}

func (r *Repo) History(ctx context.Context, name string, userID int) (_ *History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseType, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.date, es.set_order, es.reps, es.weight
			FROM exercise_logs el
			JOIN workouts w ON w.id = el.workout_id
			JOIN exercise_sets es ON es.exercise_log_id = el.id
			WHERE el.exercise_type_id = $1 AND w.user_id = $2
			ORDER BY w.date ASC, es.set_order ASC
		`,
		exerciseType.ID,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise history [query]: %w", err)
	}
	defer rows.Close()

	history := &History{Name: name}
	for rows.Next() {
		var entry HistoryEntry
		err := rows.Scan(&entry.Date, &entry.SetOrder, &entry.Reps, &entry.Weight)
		if err != nil {
			return nil, fmt.Errorf("exercise history [rows scan]: %w", err)
		}
		history.Logs = append(history.Logs, entry)
	}

	return history, nil
}

// Progress aggregates the volume (reps * weight) of the given exercise
// per workout date, for trend charts.
func (r *Repo) Progress(ctx context.Context, name string, userID int) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseType, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.date, SUM(es.reps * es.weight) AS total_volume
			FROM exercise_logs el
			JOIN workouts w ON w.id = el.workout_id
			JOIN exercise_sets es ON es.exercise_log_id = el.id
			WHERE el.exercise_type_id = $1 AND w.user_id = $2
			GROUP BY w.date
			ORDER BY w.date ASC
		`,
		exerciseType.ID,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise progress [query]: %w", err)
	}
	defer rows.Close()

	progress := &Progress{Name: name}
	for rows.Next() {
		var point ProgressPoint
		err := rows.Scan(&point.Date, &point.TotalVolume)
		if err != nil {
			return nil, fmt.Errorf("exercise progress [rows scan]: %w", err)
		}
		progress.Progress = append(progress.Progress, point)
	}

	return progress, nil
}
