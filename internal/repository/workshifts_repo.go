package repository

import (
	"context"

	"dormportal/internal/domain"
)

type WorkShiftsRepository interface {
	// List returns non-archived shifts newest first, optionally filtered by
	// the assigned user.
	List(ctx context.Context, userID string) ([]domain.WorkShift, error)

	// ListArchived returns the archive store newest first.
	ListArchived(ctx context.Context) ([]domain.ArchivedWorkShift, error)

	Create(ctx context.Context, s *domain.WorkShift) error

	// Complete adds days to the completed counter and stamps who closed it.
	Complete(ctx context.Context, shiftID string, days int, completedBy, completedByName string) (*domain.WorkShift, error)

	// Archive copies the shift into the archive store and flags the
	// original as one transaction. domain.ErrConflict if already archived.
	Archive(ctx context.Context, shiftID string) error
}
