package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dormportal/internal/domain"
	"dormportal/internal/repository"
	"dormportal/internal/validate"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	CreateNotification(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) (*domain.Notification, error)
}

type notificationService struct {
	notificationsRepo repository.NotificationsRepository
	usersRepo         repository.UsersRepository
	logger            *zap.Logger
}

func NewNotificationService(notificationsRepo repository.NotificationsRepository, usersRepo repository.UsersRepository, logger *zap.Logger) NotificationService {
	return &notificationService{
		notificationsRepo: notificationsRepo,
		usersRepo:         usersRepo,
		logger:            logger,
	}
}

type CreateNotificationRequest struct {
	UserID  string
	Type    string
	Title   string
	Message string
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	if !validate.Identifier(userID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}
	return s.notificationsRepo.ListByUser(ctx, userID)
}

func (s *notificationService) CreateNotification(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, error) {
	notifType := validate.Sanitize(req.Type, 50)
	title := validate.Sanitize(req.Title, 255)
	message := validate.Sanitize(req.Message, 1000)

	if req.UserID == "" || notifType == "" || title == "" || message == "" {
		return nil, domain.Invalid("userId", "User ID, type, title and message required")
	}
	if !validate.Identifier(req.UserID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}
	if _, err := s.usersRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("userId", "User not found")
		}
		return nil, err
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: nowUTC(),
	}
	if err := s.notificationsRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.logger.Info("notification created",
		zap.String("notification_id", n.ID),
		zap.String("user_id", n.UserID),
		zap.String("type", n.Type))
	return n, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	if !validate.Identifier(notificationID) {
		return nil, domain.Invalid("notificationId", "Valid Notification ID required")
	}
	n, err := s.notificationsRepo.MarkRead(ctx, notificationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Notification not found")
	}
	return n, err
}
