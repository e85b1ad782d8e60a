package repository

import (
	"context"
	"sort"
	"sync"

	"dormportal/internal/domain"
)

type MemoryLogsRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.LogEntry
}

func NewMemoryLogsRepository() *MemoryLogsRepository {
	return &MemoryLogsRepository{entries: map[string]domain.LogEntry{}}
}

var _ LogsRepository = (*MemoryLogsRepository)(nil)

func (r *MemoryLogsRepository) List(_ context.Context, limit int) ([]domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.LogEntry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryLogsRepository) Create(_ context.Context, e *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[e.ID] = *e
	return nil
}

func (r *MemoryLogsRepository) Purge(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.entries))
	r.entries = map[string]domain.LogEntry{}
	return n, nil
}
