package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caessy/tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores a workout together with its exercise logs and sets in a
// single transaction and returns the new workout id.
func (r *Repo) Add(ctx context.Context, workout Workout) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", workout.UserID))

	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

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

	var workoutID int
	err = tx.QueryRow(ctx, `
		INSERT INTO workouts (user_id, date, duration_min, note, routine_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		workout.UserID,
		workout.Date,
		workout.DurationMin,
		workout.Note,
		workout.RoutineID,
	).Scan(&workoutID)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}

	for _, exerciseLog := range workout.Exercises {
		var exerciseLogID int
		err = tx.QueryRow(ctx, `
			INSERT INTO exercise_logs (workout_id, exercise_type_id)
			VALUES ($1, $2)
			RETURNING id
		`,
			workoutID,
			exerciseLog.ExerciseTypeID,
		).Scan(&exerciseLogID)
		if err != nil {
			return 0, fmt.Errorf("insert exercise log: %w", err)
		}

		for _, set := range exerciseLog.Sets {
			_, err = tx.Exec(ctx, `
				INSERT INTO exercise_sets (exercise_log_id, set_order, reps, weight, weight_unit, rest_sec)
				VALUES ($1, $2, $3, $4, $5, $6)
			`,
				exerciseLogID,
				set.SetOrder,
				set.Reps,
				set.Weight,
				set.WeightUnit,
				set.RestSec,
			)
			if err != nil {
				return 0, fmt.Errorf("insert exercise set: %w", err)
			}
		}
	}

	return workoutID, nil
}

// ListByDate returns the workouts of a user on the given date, each
// with its exercise types joined in.
func (r *Repo) ListByDate(ctx context.Context, userID int, date time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	rows, err := r.db.Query(ctx, `
		SELECT w.id, w.date, w.duration_min, w.note, w.routine_id,
			et.id, et.name, et.muscle_group
		FROM workouts w
		JOIN exercise_logs el ON w.id = el.workout_id
		JOIN exercise_types et ON el.exercise_type_id = et.id
		WHERE w.user_id = $1 AND w.date::date = $2::date
		ORDER BY w.id, et.name
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("workouts by date [query]: %w", err)
	}
	defer rows.Close()

	var workoutsList []Workout
	workoutIndex := map[int]int{}
	for rows.Next() {
		var (
			workout     Workout
			exerciseLog ExerciseLog
		)
		err := rows.Scan(
			&workout.ID,
			&workout.Date,
			&workout.DurationMin,
			&workout.Note,
			&workout.RoutineID,
			&exerciseLog.ExerciseTypeID,
			&exerciseLog.Name,
			&exerciseLog.MuscleGroup,
		)
		if err != nil {
			return nil, fmt.Errorf("workouts by date [rows scan]: %w", err)
		}

		i, ok := workoutIndex[workout.ID]
		if !ok {
			workout.UserID = userID
			workoutsList = append(workoutsList, workout)
			i = len(workoutsList) - 1
			workoutIndex[workout.ID] = i
		}
		workoutsList[i].Exercises = append(workoutsList[i].Exercises, exerciseLog)
	}

	return workoutsList, nil
}

// Delete removes a workout and its logs and sets. Only the owner can
// delete a workout.
func (r *Repo) Delete(ctx context.Context, userID, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var ownerID int
	err = r.db.QueryRow(ctx, `
		SELECT user_id FROM workouts WHERE id = $1
	`, workoutID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("get workout owner: %w", err)
	}
	if ownerID != userID {
		return ErrWorkoutNotFound
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

	// order: sets, logs, workout
	_, err = tx.Exec(ctx, `
		DELETE FROM exercise_sets WHERE exercise_log_id IN
			(SELECT id FROM exercise_logs WHERE workout_id = $1)
	`, workoutID)
	if err != nil {
		return fmt.Errorf("delete exercise sets: %w", err)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM exercise_logs WHERE workout_id = $1
	`, workoutID)
	if err != nil {
		return fmt.Errorf("delete exercise logs: %w", err)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM workouts WHERE id = $1
	`, workoutID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	return nil
}

// LatestForRoutine finds the most recent workout this user saved from
// the given routine.
func (r *Repo) LatestForRoutine(ctx context.Context, userID, routineID int) (_ *WorkoutRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latest_for_routine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("userID", userID),
		attribute.Int("routineID", routineID),
	)

	var ref WorkoutRef
	err = r.db.QueryRow(ctx, `
		SELECT id, date FROM workouts
		WHERE user_id = $1 AND routine_id = $2
		ORDER BY date DESC
		LIMIT 1
	`, userID, routineID).Scan(&ref.ID, &ref.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("latest workout for routine [query row]: %w", err)
	}

	return &ref, nil
}

// SetRecords returns every set of the given workout, ordered by
// exercise type and set order.
func (r *Repo) SetRecords(ctx context.Context, workoutID int) (_ []SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.set_records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT el.exercise_type_id, es.set_order, es.reps, es.weight, es.weight_unit, es.rest_sec
		FROM exercise_logs el
		JOIN exercise_sets es ON es.exercise_log_id = el.id
		WHERE el.workout_id = $1
		ORDER BY el.exercise_type_id, es.set_order
	`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("workout set records [query]: %w", err)
	}
	defer rows.Close()

	var records []SetRecord
	for rows.Next() {
		var (
			record     SetRecord
			weightUnit *string
		)
		err := rows.Scan(
			&record.ExerciseTypeID,
			&record.SetOrder,
			&record.Reps,
			&record.Weight,
			&weightUnit,
			&record.RestSec,
		)
		if err != nil {
			return nil, fmt.Errorf("workout set records [rows scan]: %w", err)
		}
		if weightUnit != nil {
			record.WeightUnit = *weightUnit
		}
		records = append(records, record)
	}

	return records, nil
}
