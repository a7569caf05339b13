package session

// RestTimerSnapshot is the read-only view of the rest countdown.
type RestTimerSnapshot struct {
	IsActive  bool        `json:"is_active"`
	Seconds   int         `json:"seconds"`
	TargetSet *RestTarget `json:"target_set"`
}

// Snapshot is a deep copy of the session state for rendering. Mutating
// it never affects the live session.
type Snapshot struct {
	ID          string            `json:"id"`
	Active      bool              `json:"active"`
	Type        string            `json:"type,omitempty"`
	RoutineID   *int              `json:"routine_id"`
	RoutineName string            `json:"routine_name,omitempty"`
	IsPaused    bool              `json:"is_paused"`
	IsModified  bool              `json:"is_modified"`
	DurationSec int               `json:"duration_sec"`
	Exercises   []Exercise        `json:"exercises"`
	RestTimer   RestTimerSnapshot `json:"rest_timer"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		ID:          s.id,
		Active:      s.active,
		Type:        s.sessionType,
		RoutineName: s.routineName,
		IsPaused:    s.isPaused,
		IsModified:  s.isModified,
		DurationSec: s.durationSec,
		Exercises:   make([]Exercise, 0, len(s.exercises)),
		RestTimer: RestTimerSnapshot{
			IsActive: s.rest.active,
			Seconds:  s.rest.seconds,
		},
	}

	if s.routineID != nil {
		routineID := *s.routineID
		snapshot.RoutineID = &routineID
	}
	if s.rest.target != nil {
		target := *s.rest.target
		snapshot.RestTimer.TargetSet = &target
	}

	for _, exercise := range s.exercises {
		exerciseCopy := Exercise{
			ExerciseTypeID: exercise.ExerciseTypeID,
			Name:           exercise.Name,
			Sets:           make([]SetEntry, 0, len(exercise.Sets)),
		}
		for _, set := range exercise.Sets {
			exerciseCopy.Sets = append(exerciseCopy.Sets, copySet(set))
		}
		snapshot.Exercises = append(snapshot.Exercises, exerciseCopy)
	}

	return snapshot
}

func copySet(set SetEntry) SetEntry {
	setCopy := SetEntry{
		WeightUnit: set.WeightUnit,
		Completed:  set.Completed,
	}
	if set.Reps != nil {
		reps := *set.Reps
		setCopy.Reps = &reps
	}
	if set.Weight != nil {
		weight := *set.Weight
		setCopy.Weight = &weight
	}
	if set.RestSec != nil {
		restSec := *set.RestSec
		setCopy.RestSec = &restSec
	}
	if set.ActualRestSec != nil {
		actualRestSec := *set.ActualRestSec
		setCopy.ActualRestSec = &actualRestSec
	}
	if set.Suggested != nil {
		suggested := *set.Suggested
		setCopy.Suggested = &suggested
	}
	return setCopy
}
