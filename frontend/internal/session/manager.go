// Package session maps browser sessions to their stores.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/clock"
	"github.com/gamefeed/gamefeed/shared/domain"
	"github.com/gamefeed/gamefeed/shared/logger"
)

type Config struct {
	TTL       time.Duration
	Clock     clock.Clock
	Snapshots Snapshots // optional
	// StoreOptions are applied to every store the manager creates.
	StoreOptions []store.Option
}

type entry struct {
	store    *store.Store
	lastSeen time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry

	ttl       time.Duration
	clock     clock.Clock
	snapshots Snapshots
	storeOpts []store.Option
	log       *slog.Logger
}

func NewManager(cfg Config) *Manager {
	c := cfg.Clock
	if c == nil {
		c = clock.Real()
	}
	return &Manager{
		sessions:  make(map[string]*entry),
		ttl:       cfg.TTL,
		clock:     c,
		snapshots: cfg.Snapshots,
		storeOpts: cfg.StoreOptions,
		log:       logger.Component("session"),
	}
}

// Get returns the store of session id, creating it from a snapshot or
// the default state.
func (m *Manager) Get(ctx context.Context, id string) *store.Store {
	m.mu.Lock()
	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.clock.Now()
		m.mu.Unlock()
		return e.store
	}
	m.mu.Unlock()

	initial := m.load(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request of the same session may have won the race.
	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.clock.Now()
		return e.store
	}
	s := store.New(initial, m.storeOpts...)
	m.sessions[id] = &entry{store: s, lastSeen: m.clock.Now()}
	m.log.Debug("session created", "session", id)
	return s
}

// Save snapshots the state of session id if snapshots are configured.
func (m *Manager) Save(ctx context.Context, id string) {
	if m.snapshots == nil {
		return
	}
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return
	}
	if err := m.snapshots.Save(ctx, id, e.store.State()); err != nil {
		m.log.Warn("failed to save session", "session", id, "error", err)
	}
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed. A zero TTL disables eviction.
func (m *Manager) Sweep(ctx context.Context) int {
	if m.ttl <= 0 {
		return 0
	}
	now := m.clock.Now()

	m.mu.Lock()
	evicted := make(map[string]*store.Store)
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			evicted[id] = e.store
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for id, s := range evicted {
		m.evict(ctx, id, s)
	}
	if len(evicted) > 0 {
		m.log.Info("evicted idle sessions", "count", len(evicted))
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

// Close evicts every session.
func (m *Manager) Close(ctx context.Context) {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*entry)
	m.mu.Unlock()

	for id, e := range all {
		m.evict(ctx, id, e.store)
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) evict(ctx context.Context, id string, s *store.Store) {
	s.Close()
	if m.snapshots == nil {
		return
	}
	if err := m.snapshots.Save(ctx, id, s.State()); err != nil {
		m.log.Warn("failed to save evicted session", "session", id, "error", err)
	}
}

func (m *Manager) load(ctx context.Context, id string) domain.RootState {
	if m.snapshots == nil {
		return domain.DefaultState()
	}
	state, ok, err := m.snapshots.Load(ctx, id)
	if err != nil {
		m.log.Warn("failed to load session, starting fresh", "session", id, "error", err)
		return domain.DefaultState()
	}
	if !ok {
		return domain.DefaultState()
	}
	return restore(state)
}

// restore drops the transient post form fields of a loaded snapshot and
// replaces nil lists with empty ones.
func restore(state domain.RootState) domain.RootState {
	state.Posts.PostCreationStatus = domain.PostCreationIdle
	state.Posts.PostCreationMsg = ""
	state.Posts.FilePreview = ""
	if state.Posts.Status == domain.StatusLoading {
		state.Posts.Status = domain.StatusIdle
	}
	if state.Posts.Posts == nil {
		state.Posts.Posts = []domain.Post{}
	}
	if state.Users.UserPosts == nil {
		state.Users.UserPosts = []domain.Post{}
	}
	if state.Users.User.FavGames == nil {
		state.Users.User.FavGames = []domain.GameName{}
	}
	if state.Games.Games == nil {
		state.Games.Games = []domain.Game{}
	}
	return state
}
