package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"dormportal/internal/domain"
)

type MemoryTasksRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	now   func() time.Time
}

func NewMemoryTasksRepository() *MemoryTasksRepository {
	return &MemoryTasksRepository{tasks: map[string]domain.Task{}, now: time.Now}
}

var _ TasksRepository = (*MemoryTasksRepository)(nil)

func (r *MemoryTasksRepository) List(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *MemoryTasksRepository) Create(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = *t
	return nil
}

func (r *MemoryTasksRepository) Update(_ context.Context, taskID string, fields TaskUpdate) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[taskID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if fields.Empty() {
		out := t
		out.AssigneeName = nil
		return &out, nil
	}
	if fields.Title != nil {
		t.Title = *fields.Title
	}
	if fields.Description != nil {
		t.Description = emptyToNil(fields.Description)
	}
	if fields.Status != nil {
		t.Status = *fields.Status
	}
	if fields.Priority != nil {
		t.Priority = *fields.Priority
	}
	if fields.AssignedTo != nil {
		t.AssignedTo = emptyToNil(fields.AssignedTo)
		t.AssigneeName = fields.AssigneeName
	}
	if fields.ClearDueDate {
		t.DueDate = nil
	} else if fields.DueDate != nil {
		due := *fields.DueDate
		t.DueDate = &due
	}
	t.UpdatedAt = r.now().UTC()
	r.tasks[taskID] = t

	// The update response does not carry the joined name, matching the
	// Postgres RETURNING shape.
	out := t
	out.AssigneeName = nil
	return &out, nil
}
