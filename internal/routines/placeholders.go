package routines

import "github.com/caessy/tracker/internal/workouts"

// DerivePlaceholders summarizes the set records of one past workout
// into a per exercise type suggestion: the set count and the single
// set with the highest volume (reps * weight). On equal volume the
// earliest seen record wins, so input ordered by set order keeps the
// first set of a tie. Negative reps or weight count as zero volume.
func DerivePlaceholders(records []workouts.SetRecord) map[int]Placeholder {
	placeholders := make(map[int]Placeholder)
	maxVolumes := make(map[int]float64)

	for _, record := range records {
		volume := setVolume(record)

		placeholder, seen := placeholders[record.ExerciseTypeID]
		if !seen {
			placeholders[record.ExerciseTypeID] = newPlaceholder(record)
			maxVolumes[record.ExerciseTypeID] = volume
			continue
		}

		placeholder.SetCount++
		if volume > maxVolumes[record.ExerciseTypeID] {
			best := newPlaceholder(record)
			best.SetCount = placeholder.SetCount
			placeholder = best
			maxVolumes[record.ExerciseTypeID] = volume
		}
		placeholders[record.ExerciseTypeID] = placeholder
	}

	return placeholders
}

func setVolume(record workouts.SetRecord) float64 {
	reps := record.Reps
	if reps < 0 {
		reps = 0
	}
	weight := record.Weight
	if weight < 0 {
		weight = 0
	}
	return float64(reps) * weight
}

func newPlaceholder(record workouts.SetRecord) Placeholder {
	weightUnit := record.WeightUnit
	if weightUnit == "" {
		weightUnit = "kg"
	}
	return Placeholder{
		SetCount:   1,
		Reps:       record.Reps,
		Weight:     record.Weight,
		WeightUnit: weightUnit,
		RestSec:    record.RestSec,
	}
}
