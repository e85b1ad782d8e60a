package repository

import (
	"context"

	"dormportal/internal/domain"
)

// LogsRepository append-only audit trail. Purge is the single exception:
// an admin wipe of the whole table.
type LogsRepository interface {
	// List returns up to limit entries newest first.
	List(ctx context.Context, limit int) ([]domain.LogEntry, error)

	Create(ctx context.Context, e *domain.LogEntry) error

	// Purge deletes every entry and reports how many were removed.
	Purge(ctx context.Context) (int64, error)
}
