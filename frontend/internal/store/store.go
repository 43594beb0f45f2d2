// Package store holds the client state of one browser session. Actions
// are applied one at a time by a single run loop; async work runs in
// thunks that dispatch further actions when they complete.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gamefeed/gamefeed/shared/clock"
	"github.com/gamefeed/gamefeed/shared/domain"
	"github.com/gamefeed/gamefeed/shared/logger"
)

var ErrClosed = errors.New("store is closed")

// Listener observes every applied action together with the state it
// produced. Listeners run on the store loop: they must not call Dispatch
// or Close synchronously.
type Listener func(action Action, state domain.RootState)

type request struct {
	action Action
	ack    chan struct{}
}

type Store struct {
	mu      sync.RWMutex
	state   domain.RootState
	reducer Reducer

	lmu       sync.RWMutex
	listeners map[int]Listener
	nextID    int

	requests chan *request
	quit     chan struct{}
	stopped  chan struct{}
	once     sync.Once

	ctx    context.Context
	cancel context.CancelFunc

	// idle is closed while no thunk is running and replaced when the
	// in-flight count leaves zero.
	imu      sync.Mutex
	inflight int
	idle     chan struct{}

	clock  clock.Clock
	tmu    sync.Mutex
	tasks  map[string]*task
	closed bool

	log *slog.Logger
}

type Option func(*Store)

// WithClock sets the clock used by Schedule.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// New starts a store holding initial. Close must be called to stop it.
func New(initial domain.RootState, opts ...Option) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		state:     initial,
		reducer:   rootReducer,
		listeners: make(map[int]Listener),
		requests:  make(chan *request),
		quit:      make(chan struct{}),
		stopped:   make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
		clock:     clock.Real(),
		tasks:     make(map[string]*task),
		idle:      make(chan struct{}),
		log:       logger.Component("store"),
	}
	close(s.idle)
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// Dispatch applies action and returns once listeners have seen it. A
// Thunk is started on its own goroutine and Dispatch does not wait for it.
func (s *Store) Dispatch(action Action) error {
	req := &request{action: action, ack: make(chan struct{})}
	select {
	case <-s.quit:
		return ErrClosed
	case s.requests <- req:
	}
	<-req.ack
	return nil
}

// State returns a snapshot of the current state.
func (s *Store) State() domain.RootState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		delete(s.listeners, id)
	}
}

// Wait blocks until no thunk is running. Thunks dispatched concurrently
// with Wait extend it; callers in other goroutines may keep it busy.
func (s *Store) Wait() {
	<-s.idleCh()
}

// WaitContext is Wait bounded by ctx.
func (s *Store) WaitContext(ctx context.Context) error {
	select {
	case <-s.idleCh():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) idleCh() <-chan struct{} {
	s.imu.Lock()
	defer s.imu.Unlock()
	return s.idle
}

func (s *Store) thunkStarted() {
	s.imu.Lock()
	defer s.imu.Unlock()
	if s.inflight == 0 {
		s.idle = make(chan struct{})
	}
	s.inflight++
}

func (s *Store) thunkDone() {
	s.imu.Lock()
	defer s.imu.Unlock()
	s.inflight--
	if s.inflight == 0 {
		close(s.idle)
	}
}

// Close cancels pending scheduled actions and the thunk context, stops
// the loop and waits for running thunks. It is safe to call more than once.
func (s *Store) Close() {
	s.once.Do(func() {
		s.cancelTasks()
		s.cancel()
		close(s.quit)
		<-s.stopped
		// The loop is gone, so no thunk can start after this point.
		<-s.idleCh()
	})
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.quit:
			return
		case req := <-s.requests:
			s.apply(req.action)
			close(req.ack)
		}
	}
}

func (s *Store) apply(action Action) {
	actionsDispatched.WithLabelValues(action.Type()).Inc()

	if t, ok := action.(Thunk); ok {
		s.thunkStarted()
		go func() {
			defer s.thunkDone()
			t.Fn(s.ctx, s)
		}()
		s.notify(action, s.State())
		return
	}

	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	state := s.state
	s.mu.Unlock()

	s.log.Debug("action applied", "action", action.Type())
	s.notify(action, state)
}

func (s *Store) notify(action Action, state domain.RootState) {
	s.lmu.RLock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.lmu.RUnlock()

	for _, l := range ls {
		l(action, state)
	}
}
