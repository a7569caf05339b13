package session

import (
	"sync"
	"time"
)

// Scheduler drives a session's two clocks: the session duration tick
// and the rest countdown tick, once per interval each. The tick
// transitions themselves decide whether they apply (paused sessions
// and idle rest timers ignore ticks), so the scheduler only has to run
// for the lifetime of the session and stop with it.
type Scheduler struct {
	session  *Session
	interval time.Duration

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

func NewScheduler(session *Session, interval time.Duration) *Scheduler {
	return &Scheduler{
		session:  session,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Run() {
	go s.loop()
}

func (s *Scheduler) loop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.session.Tick()
			s.session.RestTick()
		case <-s.stopCh:
			return
		}
	}
}

// Stop tears the ticking goroutine down and waits for it to exit, so
// no tick can fire after Stop returns.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	<-s.doneCh
}
