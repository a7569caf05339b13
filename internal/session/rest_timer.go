package session

import (
	"math"
	"time"
)

// RestTarget points at the set a running rest countdown belongs to.
type RestTarget struct {
	ExerciseTypeID int `json:"exercise_type_id"`
	SetIndex       int `json:"set_index"`
}

type restTimerState struct {
	active         bool
	seconds        int
	target         *RestTarget
	startTimestamp time.Time
}

// StartRest begins a rest countdown for the given set. A countdown
// already running is cancelled outright, without writing back to its
// target.
func (s *Session) StartRest(exerciseTypeID, setIndex, seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveSession
	}
	s.startRestLocked(exerciseTypeID, setIndex, seconds)
	return nil
}

func (s *Session) startRestLocked(exerciseTypeID, setIndex, seconds int) {
	s.rest = restTimerState{
		active:  true,
		seconds: seconds,
		target: &RestTarget{
			ExerciseTypeID: exerciseTypeID,
			SetIndex:       setIndex,
		},
		startTimestamp: s.now(),
	}
}

// RestTick advances a running countdown by one second. When the
// countdown is exhausted the wall-clock elapsed time since the
// countdown started, not the configured value, is written onto the
// target set and the timer goes idle. External tick delivery can
// drift, the wall clock cannot.
func (s *Session) RestTick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rest.active {
		return
	}
	if s.rest.seconds > 0 {
		s.rest.seconds--
		return
	}
	s.finishRestLocked()
}

// AddRestSeconds adjusts the remaining countdown, floored at zero. The
// start timestamp is kept so the eventual writeback still reflects the
// real elapsed time.
func (s *Session) AddRestSeconds(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rest.active {
		return
	}
	s.rest.seconds += delta
	if s.rest.seconds < 0 {
		s.rest.seconds = 0
	}
}

// StopRest ends the countdown early with the same writeback as natural
// expiry: the target set records the wall-clock time actually rested.
func (s *Session) StopRest() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rest.active {
		return
	}
	s.finishRestLocked()
}

func (s *Session) finishRestLocked() {
	actualRest := int(math.Round(s.now().Sub(s.rest.startTimestamp).Seconds()))

	if target := s.rest.target; target != nil {
		if set, err := s.setLocked(target.ExerciseTypeID, target.SetIndex); err == nil {
			restSec := actualRest
			actualRestSec := actualRest
			set.RestSec = &restSec
			set.ActualRestSec = &actualRestSec
		}
	}

	s.rest = restTimerState{}
}
