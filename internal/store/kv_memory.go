package store

import (
	"context"
	"sync"
)

// memoryKeyValue is the in-memory implementation of [KeyValue]. It backs
// tests and the configuration mode with no DSN, where nothing survives the
// process.
type memoryKeyValue struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValue returns an empty in-memory [KeyValue].
func NewMemoryKeyValue() KeyValue {
	return &memoryKeyValue{values: make(map[string]string)}
}

func (m *memoryKeyValue) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKeyValue) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryKeyValue) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *memoryKeyValue) Close() error {
	return nil
}
