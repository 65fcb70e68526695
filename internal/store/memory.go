package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Nothing survives the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	// FailSaves makes every Save return this error when set
	FailSaves error
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	data, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decode(key, data, dest)
}

func (m *Memory) Save(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

// Raw returns the JSON stored at key
func (m *Memory) Raw(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.values[key]
	return data, ok
}

func (m *Memory) Close() error {
	return nil
}
