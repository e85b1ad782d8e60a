package repository

import (
	"context"

	"dormportal/internal/domain"
)

type NotificationsRepository interface {
	// ListByUser returns a user's notifications newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)

	Create(ctx context.Context, n *domain.Notification) error

	// MarkRead flips the read flag and returns the updated row.
	MarkRead(ctx context.Context, notificationID string) (*domain.Notification, error)
}
