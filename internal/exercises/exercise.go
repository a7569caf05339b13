package exercises

import "time"

var MuscleGroup = struct {
	Biceps    string
	Triceps   string
	Back      string
	Legs      string
	Chest     string
	Shoulders string
	Core      string
	Other     string
}{
	Biceps:    "biceps",
	Triceps:   "triceps",
	Back:      "back",
	Legs:      "legs",
	Chest:     "chest",
	Shoulders: "shoulders",
	Core:      "core",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Biceps,
	MuscleGroup.Triceps,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Chest,
	MuscleGroup.Shoulders,
	MuscleGroup.Core,
	MuscleGroup.Other,
}

// ExerciseType is a catalog entry shared by all users. Workout logs and
// routine entries reference it by ID.
type ExerciseType struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// HistoryEntry is a single logged set of an exercise, ordered by
// workout date and set order.
type HistoryEntry struct {
	Date     string  `json:"date"`
	SetOrder int     `json:"set_order"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
}

type History struct {
	Name string         `json:"name"`
	Logs []HistoryEntry `json:"logs"`
}

// ProgressPoint is the total volume (sum of reps * weight) an exercise
// accumulated on a given date.
type ProgressPoint struct {
	Date        string  `json:"date"`
	TotalVolume float64 `json:"total_volume"`
}

type Progress struct {
	Name     string          `json:"name"`
	Progress []ProgressPoint `json:"progress"`
}
