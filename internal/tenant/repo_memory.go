package tenant

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store useful for tests.
// It is not intended for production use.
type MemoryStore struct {
	mu       sync.RWMutex
	churches map[string]Church
}

func NewMemoryStore(churches ...Church) *MemoryStore {
	m := &MemoryStore{churches: make(map[string]Church, len(churches))}
	for _, c := range churches {
		m.churches[c.ID] = c
	}
	return m
}

func (m *MemoryStore) FindByID(ctx context.Context, id string) (Church, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.churches[id]
	if !ok {
		return Church{}, ErrNotFound
	}
	return c, nil
}

func (m *MemoryStore) Put(c Church) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.churches[c.ID] = c
}
