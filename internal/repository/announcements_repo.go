package repository

import (
	"context"

	"dormportal/internal/domain"
)

// AnnouncementsRepository append-and-list access: announcements are
// immutable after creation.
type AnnouncementsRepository interface {
	// List returns all announcements newest first, with the author name
	// resolved.
	List(ctx context.Context) ([]domain.Announcement, error)

	Create(ctx context.Context, a *domain.Announcement) error
}
