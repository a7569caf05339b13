package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/caessy/tracker/internal/routines"
	"github.com/caessy/tracker/internal/telemetry/metrics"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=session_test

type workoutSaver interface {
	Add(ctx context.Context, workout workouts.Workout) (int, error)
}

// Manager owns the running sessions, one per user at most, and the
// scheduler goroutine ticking each of them.
type Manager struct {
	mu         sync.Mutex
	sessions   map[int]*Session
	schedulers map[int]*Scheduler

	saver   workoutSaver
	metrics *metrics.Manager

	// NowFunc and TickInterval are swappable in tests.
	NowFunc      func() time.Time
	TickInterval time.Duration
}

func NewManager(saver workoutSaver, metricsManager *metrics.Manager) *Manager {
	return &Manager{
		sessions:     make(map[int]*Session),
		schedulers:   make(map[int]*Scheduler),
		saver:        saver,
		metrics:      metricsManager,
		NowFunc:      time.Now,
		TickInterval: time.Second,
	}
}

// StartCustom starts a custom session for the user. A user can have at
// most one running session.
func (m *Manager) StartCustom(userID int, initial []Exercise) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[userID]; ok {
		return nil, ErrSessionActive
	}

	session := NewSession(userID, m.NowFunc)
	if err := session.StartCustom(initial); err != nil {
		return nil, err
	}

	m.trackLocked(userID, session)
	m.metrics.CounterSessionsStarted.WithLabelValues(TypeCustom).Inc()
	log.Debugf("custom session %s started for user %d", session.ID(), userID)
	return session, nil
}

// StartRoutine starts a session seeded from a resolved routine.
func (m *Manager) StartRoutine(userID int, seed *routines.Seed) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[userID]; ok {
		return nil, ErrSessionActive
	}

	session := NewSession(userID, m.NowFunc)
	if err := session.StartRoutine(seed); err != nil {
		return nil, err
	}

	m.trackLocked(userID, session)
	m.metrics.CounterSessionsStarted.WithLabelValues(TypeRoutine).Inc()
	log.Debugf("routine session %s [%s] started for user %d", session.ID(), seed.Name, userID)
	return session, nil
}

func (m *Manager) trackLocked(userID int, session *Session) {
	scheduler := NewScheduler(session, m.TickInterval)
	scheduler.Run()
	m.sessions[userID] = session
	m.schedulers[userID] = scheduler
	m.metrics.GaugeActiveSessions.Inc()
}

// Get returns the user's running session.
func (m *Manager) Get(userID int) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// Stop discards the user's session and tears its scheduler down.
func (m *Manager) Stop(userID int) error {
	m.mu.Lock()
	session, ok := m.sessions[userID]
	scheduler := m.schedulers[userID]
	delete(m.sessions, userID)
	delete(m.schedulers, userID)
	m.mu.Unlock()

	if !ok {
		return ErrNoActiveSession
	}

	scheduler.Stop()
	session.StopAndReset()
	m.metrics.GaugeActiveSessions.Dec()
	log.Debugf("session stopped for user %d", userID)
	return nil
}

// Save persists the user's session as a workout and then discards the
// session. Sessions with no completed sets are rejected and kept
// running.
func (m *Manager) Save(ctx context.Context, userID int, note string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("userID", userID))

	m.mu.Lock()
	session, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return 0, ErrNoActiveSession
	}

	workout, err := session.SavePayload(note)
	if err != nil {
		return 0, err
	}

	workoutID, err := m.saver.Add(ctx, workout)
	if err != nil {
		return 0, fmt.Errorf("save session workout: %w", err)
	}

	m.metrics.CounterWorkoutsSaved.Inc()
	log.Debugf("session of user %d saved as workout %d", userID, workoutID)

	if err := m.Stop(userID); err != nil {
		log.Errorf("stop session after save: %s", err)
	}
	return workoutID, nil
}

// StopAll tears every running session down, used on server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	userIDs := make([]int, 0, len(m.sessions))
	for userID := range m.sessions {
		userIDs = append(userIDs, userID)
	}
	m.mu.Unlock()

	for _, userID := range userIDs {
		if err := m.Stop(userID); err != nil {
			log.Errorf("stop session for user %d: %s", userID, err)
		}
	}
}
