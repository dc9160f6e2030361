package history

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory history store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*Record // oldest first
	index   map[uuid.UUID]int
	closed  bool
}

// NewMemoryStore creates a new in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[uuid.UUID]int),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	if _, ok := m.index[r.ID]; ok {
		return ErrDuplicate
	}

	// Copy to avoid retaining the caller's record
	stored := *r
	m.index[r.ID] = len(m.records)
	m.records = append(m.records, &stored)
	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	i, ok := m.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	r := *m.records[i]
	return &r, nil
}

// List implements Store.
func (m *MemoryStore) List(limit int) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	n := len(m.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*Record, 0, n)
	for i := len(m.records) - 1; i >= 0 && len(out) < n; i-- {
		r := *m.records[i]
		out = append(out, &r)
	}
	return out, nil
}

// Clear implements Store.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.records = nil
	m.index = make(map[uuid.UUID]int)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.records = nil
	m.index = nil
	return nil
}

// Len returns the number of stored records.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
