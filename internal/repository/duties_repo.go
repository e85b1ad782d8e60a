package repository

import (
	"context"

	"dormportal/internal/domain"
)

type DutiesRepository interface {
	// List returns all entries ordered by date descending, with the user
	// name resolved.
	List(ctx context.Context) ([]domain.DutySchedule, error)

	Create(ctx context.Context, d *domain.DutySchedule) error

	// UpdateStatus is the only mutation a duty entry supports.
	UpdateStatus(ctx context.Context, dutyID, status string) (*domain.DutySchedule, error)
}
