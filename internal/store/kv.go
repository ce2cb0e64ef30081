package store

import (
	"context"
	"sync"
)

// Persisted snapshot keys. Each is written and read independently.
const (
	KeyDocument = "resumebuilder_data"
	KeyTemplate = "resumebuilder_template"
	KeyColor    = "resumebuilder_color"
)

// KV is the string key-value seam the store persists through. Set must be
// atomic per key; nothing is promised across keys.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error) // val, found, err
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryKV keeps values in process memory. Used by tests and as the
// fallback when no durable backend is configured.
type MemoryKV struct {
	mu   sync.RWMutex
	vals map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{vals: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}
