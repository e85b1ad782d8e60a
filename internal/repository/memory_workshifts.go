package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"dormportal/internal/domain"
)

// MemoryWorkShiftsRepository holds both the active and archive stores behind
// one mutex, so the archive move is atomic to readers by construction.
type MemoryWorkShiftsRepository struct {
	mu       sync.RWMutex
	shifts   map[string]domain.WorkShift
	archived map[string]domain.ArchivedWorkShift
	now      func() time.Time
}

func NewMemoryWorkShiftsRepository() *MemoryWorkShiftsRepository {
	return &MemoryWorkShiftsRepository{
		shifts:   map[string]domain.WorkShift{},
		archived: map[string]domain.ArchivedWorkShift{},
		now:      time.Now,
	}
}

var _ WorkShiftsRepository = (*MemoryWorkShiftsRepository)(nil)

func (r *MemoryWorkShiftsRepository) List(_ context.Context, userID string) ([]domain.WorkShift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := []domain.WorkShift{}
	for _, s := range r.shifts {
		if s.IsArchived {
			continue
		}
		if userID != "" && s.UserID != userID {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].AssignedAt.Equal(all[j].AssignedAt) {
			return all[i].AssignedAt.After(all[j].AssignedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *MemoryWorkShiftsRepository) ListArchived(_ context.Context) ([]domain.ArchivedWorkShift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.ArchivedWorkShift, 0, len(r.archived))
	for _, s := range r.archived {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].ArchivedAt.Equal(all[j].ArchivedAt) {
			return all[i].ArchivedAt.After(all[j].ArchivedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *MemoryWorkShiftsRepository) Create(_ context.Context, s *domain.WorkShift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shifts[s.ID] = *s
	return nil
}

func (r *MemoryWorkShiftsRepository) Complete(_ context.Context, shiftID string, days int, completedBy, completedByName string) (*domain.WorkShift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shifts[shiftID]
	if !ok || s.IsArchived {
		return nil, domain.ErrNotFound
	}
	s.CompletedDays += days
	now := r.now().UTC()
	s.CompletedAt = &now
	by := completedBy
	byName := completedByName
	s.CompletedBy = &by
	s.CompletedByName = &byName
	r.shifts[shiftID] = s
	return &s, nil
}

func (r *MemoryWorkShiftsRepository) Archive(_ context.Context, shiftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shifts[shiftID]
	if !ok {
		return domain.ErrNotFound
	}
	if s.IsArchived {
		return domain.ErrConflict
	}

	now := r.now().UTC()
	r.archived[s.ID] = domain.ArchivedWorkShift{
		ID:             s.ID,
		UserID:         s.UserID,
		UserName:       s.UserName,
		Days:           s.Days,
		CompletedDays:  s.CompletedDays,
		AssignedBy:     s.AssignedBy,
		AssignedByName: s.AssignedByName,
		Reason:         s.Reason,
		AssignedAt:     s.AssignedAt,
		ArchivedAt:     now,
	}
	s.IsArchived = true
	r.shifts[shiftID] = s
	return nil
}
