package repository

import (
	"context"
	"sort"
	"sync"

	"dormportal/internal/domain"
)

type MemoryAnnouncementsRepository struct {
	mu            sync.RWMutex
	announcements map[string]domain.Announcement
}

func NewMemoryAnnouncementsRepository() *MemoryAnnouncementsRepository {
	return &MemoryAnnouncementsRepository{announcements: map[string]domain.Announcement{}}
}

var _ AnnouncementsRepository = (*MemoryAnnouncementsRepository)(nil)

func (r *MemoryAnnouncementsRepository) List(_ context.Context) ([]domain.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Announcement, 0, len(r.announcements))
	for _, a := range r.announcements {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *MemoryAnnouncementsRepository) Create(_ context.Context, a *domain.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.announcements[a.ID] = *a
	return nil
}
