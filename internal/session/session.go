package session

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/caessy/tracker/internal/routines"
	"github.com/caessy/tracker/internal/workouts"

	"github.com/google/uuid"
)

const (
	TypeCustom  = "custom"
	TypeRoutine = "routine"
)

var (
	ErrSessionActive    = errors.New("a session is already active")
	ErrNoActiveSession  = errors.New("no active session")
	ErrExerciseNotFound = errors.New("exercise not found in session")
	ErrSetNotFound      = errors.New("set not found in session")
	ErrSetNotReady      = errors.New("set needs valid reps and weight before completion")
	ErrNotConfirmed     = errors.New("changing routine exercises needs confirmation")
	ErrNothingToSave    = errors.New("no completed sets to save")
)

// Suggested is the hint attached to a set of a routine session. All
// fields are populated together; a set either carries a full
// suggestion or none.
type Suggested struct {
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	RestSec    int     `json:"rest_sec"`
}

// SetEntry is one planned or recorded set. Nil Reps or Weight means
// the user has not filled the field in yet.
type SetEntry struct {
	Reps          *int       `json:"reps"`
	Weight        *float64   `json:"weight"`
	WeightUnit    string     `json:"weight_unit"`
	RestSec       *int       `json:"rest_sec"`
	ActualRestSec *int       `json:"actual_rest_sec,omitempty"`
	Completed     bool       `json:"completed"`
	Suggested     *Suggested `json:"suggested"`
}

type Exercise struct {
	ExerciseTypeID int        `json:"exercise_type_id"`
	Name           string     `json:"name"`
	Sets           []SetEntry `json:"sets"`
}

// UpdateSetParams carries a partial set update. Nil fields are left
// untouched.
type UpdateSetParams struct {
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	WeightUnit *string  `json:"weight_unit"`
	RestSec    *int     `json:"rest_sec"`
}

const defaultRestSec = 60

func defaultSet() SetEntry {
	restSec := defaultRestSec
	return SetEntry{
		WeightUnit: "kg",
		RestSec:    &restSec,
	}
}

// Session is the in-memory state of one running workout. All methods
// are safe for concurrent use; every mutation is a single atomic
// transition under the session lock.
type Session struct {
	mu  sync.Mutex
	now func() time.Time

	id          string
	userID      int
	active      bool
	sessionType string
	routineID   *int
	routineName string
	startedAt   time.Time
	isPaused    bool
	isModified  bool
	durationSec int
	exercises   []Exercise
	rest        restTimerState
}

func NewSession(userID int, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		id:     uuid.NewString(),
		userID: userID,
		now:    now,
	}
}

func (s *Session) ID() string  { return s.id }
func (s *Session) UserID() int { return s.userID }

// StartCustom begins a custom session, optionally seeded with an
// exercise list (e.g. from a past workout). Every exercise gets at
// least one empty set.
func (s *Session) StartCustom(initial []Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return ErrSessionActive
	}

	s.active = true
	s.sessionType = TypeCustom
	s.routineID = nil
	s.routineName = ""
	s.startedAt = s.now()
	s.isPaused = false
	s.isModified = false
	s.durationSec = 0
	s.exercises = nil
	s.rest = restTimerState{}

	for _, initialExercise := range initial {
		exercise := Exercise{
			ExerciseTypeID: initialExercise.ExerciseTypeID,
			Name:           initialExercise.Name,
		}
		for _, initialSet := range initialExercise.Sets {
			set := SetEntry{
				Reps:       initialSet.Reps,
				Weight:     initialSet.Weight,
				WeightUnit: initialSet.WeightUnit,
				RestSec:    initialSet.RestSec,
			}
			if set.WeightUnit == "" {
				set.WeightUnit = "kg"
			}
			exercise.Sets = append(exercise.Sets, set)
		}
		if len(exercise.Sets) == 0 {
			exercise.Sets = []SetEntry{{WeightUnit: "kg"}}
		}
		s.exercises = append(s.exercises, exercise)
	}

	return nil
}

// StartRoutine begins a session from a resolved routine seed. Each
// exercise gets as many sets as its placeholder's set count (one when
// there is no placeholder), with the suggestion attached and the
// editable reps and weight left empty.
func (s *Session) StartRoutine(seed *routines.Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return ErrSessionActive
	}

	routineID := seed.ID
	s.active = true
	s.sessionType = TypeRoutine
	s.routineID = &routineID
	s.routineName = seed.Name
	s.startedAt = s.now()
	s.isPaused = false
	s.isModified = false
	s.durationSec = 0
	s.exercises = nil
	s.rest = restTimerState{}

	for _, seedExercise := range seed.Exercises {
		exercise := Exercise{
			ExerciseTypeID: seedExercise.ExerciseTypeID,
			Name:           seedExercise.Name,
		}

		setCount := 1
		if seedExercise.Placeholder != nil && seedExercise.Placeholder.SetCount > 0 {
			setCount = seedExercise.Placeholder.SetCount
		}

		for i := 0; i < setCount; i++ {
			set := defaultSet()
			if placeholder := seedExercise.Placeholder; placeholder != nil {
				suggested := &Suggested{
					Reps:       placeholder.Reps,
					Weight:     placeholder.Weight,
					WeightUnit: placeholder.WeightUnit,
					RestSec:    defaultRestSec,
				}
				if suggested.WeightUnit == "" {
					suggested.WeightUnit = "kg"
				}
				if placeholder.RestSec != nil {
					suggested.RestSec = *placeholder.RestSec
				}
				set.Suggested = suggested
				set.WeightUnit = suggested.WeightUnit
				restSec := suggested.RestSec
				set.RestSec = &restSec
			}
			exercise.Sets = append(exercise.Sets, set)
		}

		s.exercises = append(s.exercises, exercise)
	}

	return nil
}

// ConvertToCustom turns a routine session into a custom one: the
// routine link is dropped and every suggestion is stripped. The
// conversion cannot be undone within the session.
func (s *Session) ConvertToCustom() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}

	s.convertToCustomLocked()
	return nil
}

func (s *Session) convertToCustomLocked() {
	s.sessionType = TypeCustom
	s.routineID = nil
	s.routineName = ""
	s.isModified = true
	for i := range s.exercises {
		for j := range s.exercises[i].Sets {
			s.exercises[i].Sets[j].Suggested = nil
		}
	}
}

// AddExercises appends the given exercises, silently dropping the ones
// already present. Adding to a routine session converts it to custom,
// which the caller must have confirmed.
func (s *Session) AddExercises(toAdd []Exercise, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}

	existing := make(map[int]bool, len(s.exercises))
	for _, exercise := range s.exercises {
		existing[exercise.ExerciseTypeID] = true
	}

	var newExercises []Exercise
	for _, candidate := range toAdd {
		if existing[candidate.ExerciseTypeID] {
			continue
		}
		existing[candidate.ExerciseTypeID] = true
		newExercises = append(newExercises, Exercise{
			ExerciseTypeID: candidate.ExerciseTypeID,
			Name:           candidate.Name,
			Sets:           []SetEntry{defaultSet()},
		})
	}
	if len(newExercises) == 0 {
		return nil
	}

	if s.sessionType == TypeRoutine {
		if !confirmed {
			return ErrNotConfirmed
		}
		s.convertToCustomLocked()
	}

	s.exercises = append(s.exercises, newExercises...)
	return nil
}

// RemoveExercise drops an exercise and all its sets. Removing from a
// routine session converts it to custom, which the caller must have
// confirmed.
func (s *Session) RemoveExercise(exerciseTypeID int, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}

	index := s.exerciseIndexLocked(exerciseTypeID)
	if index < 0 {
		return ErrExerciseNotFound
	}

	if s.sessionType == TypeRoutine {
		if !confirmed {
			return ErrNotConfirmed
		}
		s.convertToCustomLocked()
	}

	s.exercises = append(s.exercises[:index], s.exercises[index+1:]...)
	return nil
}

func (s *Session) AddSet(exerciseTypeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}

	index := s.exerciseIndexLocked(exerciseTypeID)
	if index < 0 {
		return ErrExerciseNotFound
	}

	s.exercises[index].Sets = append(s.exercises[index].Sets, defaultSet())
	return nil
}

// RemoveSet drops a set. An exercise always keeps at least one set:
// removing the last one replaces it with a fresh empty set.
func (s *Session) RemoveSet(exerciseTypeID, setIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}

	index := s.exerciseIndexLocked(exerciseTypeID)
	if index < 0 {
		return ErrExerciseNotFound
	}
	sets := s.exercises[index].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return ErrSetNotFound
	}

	sets = append(sets[:setIndex], sets[setIndex+1:]...)
	if len(sets) == 0 {
		sets = []SetEntry{defaultSet()}
	}
	s.exercises[index].Sets = sets
	return nil
}

func (s *Session) UpdateSet(exerciseTypeID, setIndex int, params UpdateSetParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}

	set, err := s.setLocked(exerciseTypeID, setIndex)
	if err != nil {
		return err
	}

	if params.Reps != nil {
		set.Reps = params.Reps
	}
	if params.Weight != nil {
		set.Weight = params.Weight
	}
	if params.WeightUnit != nil {
		set.WeightUnit = *params.WeightUnit
	}
	if params.RestSec != nil {
		set.RestSec = params.RestSec
	}
	return nil
}

// CompleteSet toggles a set's completed flag. Completing requires the
// set to carry valid reps and weight; when the set has a positive rest
// value a rest countdown starts targeting it. The returned bool
// reports whether a countdown started.
func (s *Session) CompleteSet(exerciseTypeID, setIndex int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return false, ErrNoActiveSession
	}

	set, err := s.setLocked(exerciseTypeID, setIndex)
	if err != nil {
		return false, err
	}

	if set.Completed {
		set.Completed = false
		return false, nil
	}

	if set.Reps == nil || *set.Reps <= 0 || set.Weight == nil || *set.Weight < 0 {
		return false, ErrSetNotReady
	}
	set.Completed = true

	if set.RestSec != nil && *set.RestSec > 0 {
		s.startRestLocked(exerciseTypeID, setIndex, *set.RestSec)
		return true, nil
	}
	return false, nil
}

// Tick advances the session clock by one second. Ignored while paused
// or idle.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.isPaused {
		return
	}
	s.durationSec++
}

func (s *Session) PauseTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.isPaused = true
}

func (s *Session) ResumeTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.isPaused = false
}

// StopAndReset discards all session state and cancels any running rest
// countdown. Nothing is persisted.
func (s *Session) StopAndReset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	s.sessionType = ""
	s.routineID = nil
	s.routineName = ""
	s.startedAt = time.Time{}
	s.isPaused = false
	s.isModified = false
	s.durationSec = 0
	s.exercises = nil
	s.rest = restTimerState{}
}

func (s *Session) exerciseIndexLocked(exerciseTypeID int) int {
	for i, exercise := range s.exercises {
		if exercise.ExerciseTypeID == exerciseTypeID {
			return i
		}
	}
	return -1
}

func (s *Session) setLocked(exerciseTypeID, setIndex int) (*SetEntry, error) {
	index := s.exerciseIndexLocked(exerciseTypeID)
	if index < 0 {
		return nil, ErrExerciseNotFound
	}
	if setIndex < 0 || setIndex >= len(s.exercises[index].Sets) {
		return nil, ErrSetNotFound
	}
	return &s.exercises[index].Sets[setIndex], nil
}

// SavePayload serializes the session into a workout: only completed
// sets with positive reps are kept, exercises left without sets are
// dropped, and the duration is rounded to minutes with a one minute
// floor.
func (s *Session) SavePayload(note string) (workouts.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return workouts.Workout{}, ErrNoActiveSession
	}

	workout := workouts.Workout{
		UserID:      s.userID,
		Date:        s.now(),
		DurationMin: int(math.Max(1, math.Round(float64(s.durationSec)/60))),
		Note:        note,
	}
	if s.sessionType == TypeRoutine && s.routineID != nil {
		routineID := *s.routineID
		workout.RoutineID = &routineID
	}

	for _, exercise := range s.exercises {
		exerciseLog := workouts.ExerciseLog{
			ExerciseTypeID: exercise.ExerciseTypeID,
		}
		for _, set := range exercise.Sets {
			if !set.Completed || set.Reps == nil || *set.Reps <= 0 {
				continue
			}
			weight := 0.0
			if set.Weight != nil {
				weight = *set.Weight
			}
			weightUnit := set.WeightUnit
			if weightUnit == "" {
				weightUnit = "kg"
			}
			exerciseLog.Sets = append(exerciseLog.Sets, workouts.Set{
				SetOrder:   len(exerciseLog.Sets) + 1,
				Reps:       *set.Reps,
				Weight:     weight,
				WeightUnit: weightUnit,
				RestSec:    set.RestSec,
			})
		}
		if len(exerciseLog.Sets) == 0 {
			continue
		}
		workout.Exercises = append(workout.Exercises, exerciseLog)
	}

	if len(workout.Exercises) == 0 {
		return workouts.Workout{}, ErrNothingToSave
	}
	return workout, nil
}
