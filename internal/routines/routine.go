package routines

import (
	"time"

	"github.com/caessy/tracker/internal/workouts"
)

const (
	TypeSystem = "system"
	TypeCustom = "custom"
)

// Routine is a named, ordered list of exercises. System routines have
// no owning user and are visible to everyone.
type Routine struct {
	ID          int       `json:"id"`
	UserID      *int      `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type RoutineExercise struct {
	ExerciseTypeID int    `json:"id"`
	Name           string `json:"name"`
	Order          int    `json:"order"`
}

// Placeholder is the suggested target for one exercise in a routine
// session: the set count and the highest volume set from the user's
// most recent workout of that routine. RestSec stays nil when the
// source set had no rest recorded.
type Placeholder struct {
	SetCount   int     `json:"set_count"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	RestSec    *int    `json:"rest_sec"`
}

// SeedExercise is one routine entry enriched with its placeholder, in
// routine order.
type SeedExercise struct {
	ExerciseTypeID int          `json:"id"`
	Name           string       `json:"name"`
	Order          int          `json:"order"`
	Placeholder    *Placeholder `json:"placeholder"`
}

// Seed is everything needed to start a routine session.
type Seed struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Type        string               `json:"type"`
	LastWorkout *workouts.WorkoutRef `json:"last_workout"`
	Exercises   []SeedExercise       `json:"exercises"`
}
