package session

import (
	"context"
	"sync"

	"github.com/gamefeed/gamefeed/shared/domain"
)

// Snapshots persists session state between process restarts and evictions.
type Snapshots interface {
	Load(ctx context.Context, id string) (domain.RootState, bool, error)
	Save(ctx context.Context, id string, state domain.RootState) error
}

// MemorySnapshots keeps snapshots in process memory.
type MemorySnapshots struct {
	mu     sync.RWMutex
	states map[string]domain.RootState
}

func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{states: make(map[string]domain.RootState)}
}

func (m *MemorySnapshots) Load(_ context.Context, id string) (domain.RootState, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[id]
	return state, ok, nil
}

func (m *MemorySnapshots) Save(_ context.Context, id string, state domain.RootState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = state
	return nil
}
