package repository

import (
	"context"
	"sync"
	"time"

	"resume-builder/internal/domain"
)

// MemoryRecords keeps the analytics log in process memory with an
// auto-incrementing id starting at 1.
type MemoryRecords struct {
	mu      sync.RWMutex
	nextID  int64
	records []domain.ResumeRecord
}

func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{nextID: 1}
}

func (m *MemoryRecords) Append(_ context.Context, r *domain.ResumeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.nextID
	m.nextID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	stored := *r
	stored.Data = r.Data.Clone()
	m.records = append(m.records, stored)
	return nil
}

func (m *MemoryRecords) List(_ context.Context) ([]domain.ResumeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ResumeRecord, len(m.records))
	for i, r := range m.records {
		out[i] = r
		out[i].Data = r.Data.Clone()
	}
	return out, nil
}

func (m *MemoryRecords) CountByTemplate(_ context.Context) (map[string]int, error) {
	return m.count(func(r domain.ResumeRecord) string { return r.Template }), nil
}

func (m *MemoryRecords) CountByColor(_ context.Context) (map[string]int, error) {
	return m.count(func(r domain.ResumeRecord) string { return r.ColorScheme }), nil
}

func (m *MemoryRecords) count(key func(domain.ResumeRecord) string) map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[string]int{}
	for _, r := range m.records {
		out[key(r)]++
	}
	return out
}
