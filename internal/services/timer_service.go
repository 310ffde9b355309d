// internal/services/timer_service.go
package services

import (
	"log"
	"sync"
	"time"

	"chronos/internal/models"
	"chronos/internal/state"
)

// TimerSupervisor runs the accrual loop: while at least one task is
// In Progress it ticks once per interval and adds interval/60 minutes of
// actual time to every running task. The loop is established and torn
// down reactively from snapshot swaps; there is no manual cancel token.
//
// Accrual is interval-based, not timestamp-based: drift and missed ticks
// under load are accepted and never corrected.
type TimerSupervisor struct {
	container *state.Container
	interval  time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

func NewTimerSupervisor(container *state.Container, interval time.Duration) *TimerSupervisor {
	if interval <= 0 {
		interval = time.Second
	}
	s := &TimerSupervisor{container: container, interval: interval}
	container.Subscribe(s.onChange)
	return s
}

// Run starts supervision based on the current snapshot. Call once after
// startup so a persisted In Progress task resumes accruing.
func (s *TimerSupervisor) Run() {
	s.onChange(s.container.Snapshot())
}

func (s *TimerSupervisor) onChange(st *models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := st.AnyTaskInProgress()
	switch {
	case active && s.stop == nil:
		s.stop = make(chan struct{})
		go s.loop(s.stop)
		log.Printf("[timer] accrual loop started")
	case !active && s.stop != nil:
		close(s.stop)
		s.stop = nil
		log.Printf("[timer] accrual loop stopped")
	}
}

func (s *TimerSupervisor) loop(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one accrual pass. Exported so tests can advance the
// clock deterministically.
func (s *TimerSupervisor) Tick() {
	minutes := s.interval.Seconds() / 60
	s.container.Mutate(func(st *models.AppState) bool {
		changed := false
		for i := range st.Tasks {
			if st.Tasks[i].Status == models.StatusInProgress {
				st.Tasks[i].ActualTime += minutes
				changed = true
			}
		}
		return changed
	})
}

// Shutdown tears the loop down regardless of state.
func (s *TimerSupervisor) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}
