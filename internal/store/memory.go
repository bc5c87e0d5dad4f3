package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle-tracker/internal/profile"
)

// Memory keeps encoded documents in a map guarded by an RWMutex.
// State is lost when the process exits.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, id string) (*profile.Profile, error) {
	m.mu.RLock()
	b, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(b)
}

func (m *Memory) Save(ctx context.Context, p *profile.Profile) error {
	b, err := encode(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[p.User.ID] = b
	return nil
}

func (m *Memory) Close() error { return nil }
