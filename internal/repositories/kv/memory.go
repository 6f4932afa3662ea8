package kv

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps everything in a map. Used for tests and for the
// ":memory:" DSN.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return get(m.data, key), nil
}

func (m *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	put(m.data, key, value)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.data))
	for k := range m.data {
		out[k] = get(m.data, k)
	}
	return out, nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.data)
	return nil
}

// Update stages writes in a copy of the map and swaps it in on success.
func (m *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &memoryTx{data: maps.Clone(m.data)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	m.data = staged.data
	return nil
}

// memoryTx is the view handed to Update callbacks. The parent lock is
// already held, so it must not take it again.
type memoryTx struct {
	data map[string][]byte
}

func (t *memoryTx) Get(ctx context.Context, key string) ([]byte, error) {
	return get(t.data, key), nil
}

func (t *memoryTx) Put(ctx context.Context, key string, value []byte) error {
	put(t.data, key, value)
	return nil
}

func (t *memoryTx) Delete(ctx context.Context, key string) error {
	delete(t.data, key)
	return nil
}

func (t *memoryTx) List(ctx context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(t.data))
	for k := range t.data {
		out[k] = get(t.data, k)
	}
	return out, nil
}

func (t *memoryTx) Clear(ctx context.Context) error {
	clear(t.data)
	return nil
}

func (t *memoryTx) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, t)
}

// get and put copy so callers can't alias stored bytes.
func get(data map[string][]byte, key string) []byte {
	v, ok := data[key]
	if !ok {
		return nil
	}
	return append([]byte{}, v...)
}

func put(data map[string][]byte, key string, value []byte) {
	data[key] = append([]byte{}, value...)
}
