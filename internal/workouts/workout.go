package workouts

import "time"

// Set is one logged set of an exercise within a workout.
type Set struct {
	SetOrder   int     `json:"set_order"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit,omitempty"`
	RestSec    *int    `json:"rest_sec,omitempty"`
}

type ExerciseLog struct {
	ExerciseTypeID int    `json:"exercise_type_id"`
	Name           string `json:"name,omitempty"`
	MuscleGroup    string `json:"muscle_group,omitempty"`
	Sets           []Set  `json:"sets,omitempty"`
}

// Workout is a finished workout log. RoutineID is set only when the
// workout was started from a routine.
type Workout struct {
	ID          int           `json:"workout_id"`
	UserID      int           `json:"-"`
	Date        time.Time     `json:"date"`
	DurationMin int           `json:"duration_min"`
	Note        string        `json:"note"`
	RoutineID   *int          `json:"routine_id,omitempty"`
	Exercises   []ExerciseLog `json:"exercises"`
}

// WorkoutRef is a lightweight pointer to a stored workout, used when
// only its identity and date matter.
type WorkoutRef struct {
	ID   int       `json:"id"`
	Date time.Time `json:"date"`
}

// SetRecord is a flattened set row of a stored workout, one per set,
// keyed by the exercise type it belongs to.
type SetRecord struct {
	ExerciseTypeID int
	SetOrder       int
	Reps           int
	Weight         float64
	WeightUnit     string
	RestSec        *int
}
