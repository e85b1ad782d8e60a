package repository

import (
	"context"
	"sort"
	"sync"

	"dormportal/internal/domain"
)

type MemoryNotificationsRepository struct {
	mu            sync.RWMutex
	notifications map[string]domain.Notification
}

func NewMemoryNotificationsRepository() *MemoryNotificationsRepository {
	return &MemoryNotificationsRepository{notifications: map[string]domain.Notification{}}
}

var _ NotificationsRepository = (*MemoryNotificationsRepository)(nil)

func (r *MemoryNotificationsRepository) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := []domain.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			all = append(all, n)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *MemoryNotificationsRepository) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[n.ID] = *n
	return nil
}

func (r *MemoryNotificationsRepository) MarkRead(_ context.Context, notificationID string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[notificationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	n.IsRead = true
	r.notifications[notificationID] = n
	return &n, nil
}
