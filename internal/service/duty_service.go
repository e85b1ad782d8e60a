package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dormportal/internal/domain"
	"dormportal/internal/repository"
	"dormportal/internal/validate"
)

type DutyService interface {
	ListDuties(ctx context.Context) ([]domain.DutySchedule, error)
	CreateDuty(ctx context.Context, req CreateDutyRequest) (*domain.DutySchedule, error)
	UpdateDutyStatus(ctx context.Context, req UpdateDutyStatusRequest) (*domain.DutySchedule, error)
}

type dutyService struct {
	dutiesRepo repository.DutiesRepository
	usersRepo  repository.UsersRepository
	logger     *zap.Logger
}

func NewDutyService(dutiesRepo repository.DutiesRepository, usersRepo repository.UsersRepository, logger *zap.Logger) DutyService {
	return &dutyService{dutiesRepo: dutiesRepo, usersRepo: usersRepo, logger: logger}
}

type CreateDutyRequest struct {
	UserID string
	Date   string // RFC3339 or YYYY-MM-DD
	Zone   string
}

type UpdateDutyStatusRequest struct {
	DutyID string
	Status string
}

func (s *dutyService) ListDuties(ctx context.Context) ([]domain.DutySchedule, error) {
	return s.dutiesRepo.List(ctx)
}

func (s *dutyService) CreateDuty(ctx context.Context, req CreateDutyRequest) (*domain.DutySchedule, error) {
	if !validate.Identifier(req.UserID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}
	zone := validate.Sanitize(req.Zone, 100)
	if req.Date == "" || zone == "" {
		return nil, domain.Invalid("date", "Date and zone required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, domain.Invalid("date", "Invalid date format")
	}

	user, err := s.usersRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("userId", "User not found")
		}
		return nil, err
	}

	d := &domain.DutySchedule{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		Date:      date,
		Zone:      zone,
		Status:    domain.DefaultDutyStatus,
		CreatedAt: nowUTC(),
	}
	if err := s.dutiesRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("duty created",
		zap.String("duty_id", d.ID),
		zap.String("zone", d.Zone))
	return d, nil
}

func (s *dutyService) UpdateDutyStatus(ctx context.Context, req UpdateDutyStatusRequest) (*domain.DutySchedule, error) {
	if !validate.Identifier(req.DutyID) {
		return nil, domain.Invalid("dutyId", "Valid Duty ID required")
	}
	if !validate.Enum(req.Status, domain.DutyStatuses) {
		return nil, domain.Invalid("status", "Invalid status")
	}

	d, err := s.dutiesRepo.UpdateStatus(ctx, req.DutyID, req.Status)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Duty not found")
	}
	return d, err
}

// parseDate accepts RFC3339 timestamps or plain dates; the duty calendar
// only cares about the day.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
