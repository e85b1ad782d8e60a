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

type AnnouncementService interface {
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*domain.Announcement, error)
}

type announcementService struct {
	announcementsRepo repository.AnnouncementsRepository
	usersRepo         repository.UsersRepository
	logger            *zap.Logger
}

func NewAnnouncementService(announcementsRepo repository.AnnouncementsRepository, usersRepo repository.UsersRepository, logger *zap.Logger) AnnouncementService {
	return &announcementService{
		announcementsRepo: announcementsRepo,
		usersRepo:         usersRepo,
		logger:            logger,
	}
}

type CreateAnnouncementRequest struct {
	Title    string
	Content  string
	AuthorID string
}

func (s *announcementService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcementsRepo.List(ctx)
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*domain.Announcement, error) {
	title := validate.Sanitize(req.Title, 500)
	content := validate.Sanitize(req.Content, 10000)

	if title == "" || content == "" {
		return nil, domain.Invalid("title", "Title and content required")
	}
	if !validate.Identifier(req.AuthorID) {
		return nil, domain.Invalid("authorId", "Valid Author ID required")
	}

	author, err := s.usersRepo.GetByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("authorId", "Author not found")
		}
		return nil, err
	}

	a := &domain.Announcement{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  nowUTC(),
	}
	if err := s.announcementsRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("announcement created",
		zap.String("announcement_id", a.ID),
		zap.String("author_id", a.AuthorID))
	return a, nil
}
