package repository

import (
	"context"
	"sort"
	"sync"

	"dormportal/internal/domain"
)

type MemoryDutiesRepository struct {
	mu     sync.RWMutex
	duties map[string]domain.DutySchedule
}

func NewMemoryDutiesRepository() *MemoryDutiesRepository {
	return &MemoryDutiesRepository{duties: map[string]domain.DutySchedule{}}
}

var _ DutiesRepository = (*MemoryDutiesRepository)(nil)

func (r *MemoryDutiesRepository) List(_ context.Context) ([]domain.DutySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.DutySchedule, 0, len(r.duties))
	for _, d := range r.duties {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].Zone < all[j].Zone
	})
	return all, nil
}

func (r *MemoryDutiesRepository) Create(_ context.Context, d *domain.DutySchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.duties[d.ID] = *d
	return nil
}

func (r *MemoryDutiesRepository) UpdateStatus(_ context.Context, dutyID, status string) (*domain.DutySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.duties[dutyID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.Status = status
	r.duties[dutyID] = d

	out := d
	out.UserName = ""
	return &out, nil
}
