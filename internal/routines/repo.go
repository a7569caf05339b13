package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/caessy/tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the user's own routines plus the system routines.
func (r *Repo) List(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, created_at,
			CASE WHEN user_id IS NULL THEN 'system' ELSE 'custom' END AS type
		FROM routines
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("routines [query]: %w", err)
	}
	defer rows.Close()

	var routinesList []Routine
	for rows.Next() {
		var (
			routine     Routine
			description *string
		)
		err := rows.Scan(
			&routine.ID,
			&routine.UserID,
			&routine.Name,
			&description,
			&routine.CreatedAt,
			&routine.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("routines [rows scan]: %w", err)
		}
		if description != nil {
			routine.Description = *description
		}
		routinesList = append(routinesList, routine)
	}

	return routinesList, nil
}

func (r *Repo) Get(ctx context.Context, routineID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		routine     Routine
		description *string
	)
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, name, description, created_at,
			CASE WHEN user_id IS NULL THEN 'system' ELSE 'custom' END AS type
		FROM routines
		WHERE id = $1
	`, routineID).Scan(
		&routine.ID,
		&routine.UserID,
		&routine.Name,
		&description,
		&routine.CreatedAt,
		&routine.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("routine [query row]: %w", err)
	}
	if description != nil {
		routine.Description = *description
	}

	return &routine, nil
}

func (r *Repo) GetExercises(ctx context.Context, routineID int) (_ []RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT re.exercise_type_id, et.name, re.exercise_order
		FROM routine_exercises re
		JOIN exercise_types et ON et.id = re.exercise_type_id
		WHERE re.routine_id = $1
		ORDER BY re.exercise_order
	`, routineID)
	if err != nil {
		return nil, fmt.Errorf("routine exercises [query]: %w", err)
	}
	defer rows.Close()

	var routineExercises []RoutineExercise
	for rows.Next() {
		var routineExercise RoutineExercise
		err := rows.Scan(
			&routineExercise.ExerciseTypeID,
			&routineExercise.Name,
			&routineExercise.Order,
		)
		if err != nil {
			return nil, fmt.Errorf("routine exercises [rows scan]: %w", err)
		}
		routineExercises = append(routineExercises, routineExercise)
	}

	return routineExercises, nil
}

type CreateRoutineParams struct {
	Name            string
	Description     string
	ExerciseTypeIDs []int
}

// Create stores a routine with its exercise list in routine order.
func (r *Repo) Create(ctx context.Context, userID int, params CreateRoutineParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var routineID int
	err = tx.QueryRow(ctx, `
		INSERT INTO routines (user_id, name, description)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id
	`, userID, params.Name, params.Description).Scan(&routineID)
	if err != nil {
		return 0, fmt.Errorf("insert routine: %w", err)
	}

	for i, exerciseTypeID := range params.ExerciseTypeIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO routine_exercises (routine_id, exercise_type_id, exercise_order)
			VALUES ($1, $2, $3)
		`, routineID, exerciseTypeID, i+1)
		if err != nil {
			return 0, fmt.Errorf("insert routine exercise: %w", err)
		}
	}

	return routineID, nil
}

// Delete removes a user's own routine. Workouts saved from it are kept
// and detached. System routines cannot be deleted through here.
func (r *Repo) Delete(ctx context.Context, userID, routineID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine, err := r.Get(ctx, routineID)
	if err != nil {
		return err
	}
	if routine.UserID == nil || *routine.UserID != userID {
		return ErrRoutineNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
		UPDATE workouts SET routine_id = NULL WHERE routine_id = $1
	`, routineID)
	if err != nil {
		return fmt.Errorf("detach workouts: %w", err)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM routine_exercises WHERE routine_id = $1
	`, routineID)
	if err != nil {
		return fmt.Errorf("delete routine exercises: %w", err)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM routines WHERE id = $1
	`, routineID)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}

	return nil
}
