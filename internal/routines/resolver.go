package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrRoutineForbidden = errors.New("routine belongs to another user")
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=routines_test

type routineGetter interface {
	Get(ctx context.Context, routineID int) (*Routine, error)
	GetExercises(ctx context.Context, routineID int) ([]RoutineExercise, error)
}

type workoutHistory interface {
	LatestForRoutine(ctx context.Context, userID, routineID int) (*workouts.WorkoutRef, error)
	SetRecords(ctx context.Context, workoutID int) ([]workouts.SetRecord, error)
}

// Resolver composes a routine with suggestions derived from the
// user's most recent workout of that routine. Resolution is read-only.
type Resolver struct {
	routines routineGetter
	workouts workoutHistory
}

func NewResolver(routines routineGetter, workouts workoutHistory) *Resolver {
	return &Resolver{
		routines: routines,
		workouts: workouts,
	}
}

// ResolveSeed returns the session seed for the given routine. System
// routines are readable by everyone, custom routines only by their
// owner. A routine never performed yields nil placeholders on every
// exercise.
func (r *Resolver) ResolveSeed(ctx context.Context, userID, routineID int) (_ *Seed, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.resolver.resolve_seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("userID", userID),
		attribute.Int("routineID", routineID),
	)

	routine, err := r.routines.Get(ctx, routineID)
	if err != nil {
		return nil, err
	}
	if routine.UserID != nil && *routine.UserID != userID {
		return nil, ErrRoutineForbidden
	}

	routineExercises, err := r.routines.GetExercises(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("get routine exercises: %w", err)
	}

	seed := &Seed{
		ID:        routine.ID,
		Name:      routine.Name,
		Type:      TypeCustom,
		Exercises: make([]SeedExercise, 0, len(routineExercises)),
	}
	if routine.UserID == nil {
		seed.Type = TypeSystem
	}

	placeholders := map[int]Placeholder{}
	lastWorkout, err := r.workouts.LatestForRoutine(ctx, userID, routineID)
	switch {
	case err == nil:
		seed.LastWorkout = lastWorkout
		records, err := r.workouts.SetRecords(ctx, lastWorkout.ID)
		if err != nil {
			return nil, fmt.Errorf("get set records for workout %d: %w", lastWorkout.ID, err)
		}
		placeholders = DerivePlaceholders(records)
	case errors.Is(err, workouts.ErrWorkoutNotFound):
		// routine never performed, no suggestions
	default:
		return nil, fmt.Errorf("find latest workout for routine: %w", err)
	}

	for _, routineExercise := range routineExercises {
		seedExercise := SeedExercise{
			ExerciseTypeID: routineExercise.ExerciseTypeID,
			Name:           routineExercise.Name,
			Order:          routineExercise.Order,
		}
		if placeholder, ok := placeholders[routineExercise.ExerciseTypeID]; ok {
			seedExercise.Placeholder = &placeholder
		}
		seed.Exercises = append(seed.Exercises, seedExercise)
	}

	return seed, nil
}
