package store

import (
	"time"

	"github.com/gamefeed/gamefeed/shared/clock"
)

type task struct {
	timer clock.Timer
}

// Schedule dispatches action after delay. Scheduling under a key that is
// still pending cancels the earlier task.
func (s *Store) Schedule(key string, delay time.Duration, action Action) error {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if prev, ok := s.tasks[key]; ok {
		prev.timer.Stop()
	}

	t := &task{}
	t.timer = s.clock.AfterFunc(delay, func() {
		s.tmu.Lock()
		if s.tasks[key] != t {
			s.tmu.Unlock()
			return
		}
		delete(s.tasks, key)
		s.tmu.Unlock()

		if err := s.Dispatch(action); err != nil {
			s.log.Debug("scheduled action dropped", "key", key, "action", action.Type(), "error", err)
		}
	})
	s.tasks[key] = t
	return nil
}

// Pending reports whether a task is scheduled under key.
func (s *Store) Pending(key string) bool {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	_, ok := s.tasks[key]
	return ok
}

// PendingCount returns the number of scheduled tasks.
func (s *Store) PendingCount() int {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	return len(s.tasks)
}

func (s *Store) cancelTasks() {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	s.closed = true
	for key, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, key)
	}
}
