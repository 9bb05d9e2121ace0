package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
	sequences   map[string]int64
}

// NewMemory returns a Store holding everything in process memory. Used by the
// memory driver and as the storage fixture in tests.
func NewMemory() Store {
	return &memoryStore{
		collections: map[string][]byte{},
		sequences:   map[string]int64{},
	}
}

func (m *memoryStore) Load(_ context.Context, collectionKey string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.collections[collectionKey]
	if !ok {
		return nil, nil
	}

	cop := make([]byte, len(data))
	copy(cop, data)

	return cop, nil
}

func (m *memoryStore) Save(_ context.Context, collectionKey string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(collectionKey, data)

	return nil
}

func (m *memoryStore) SaveAll(_ context.Context, snapshots ...Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, snapshot := range snapshots {
		m.put(snapshot.Key, snapshot.Data)
	}

	return nil
}

func (m *memoryStore) NextSeq(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sequences[name]++

	return m.sequences[name], nil
}

func (m *memoryStore) put(key string, data []byte) {
	cop := make([]byte, len(data))
	copy(cop, data)

	m.collections[key] = cop
}
