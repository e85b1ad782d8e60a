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

type WorkShiftService interface {
	ListWorkShifts(ctx context.Context, userID string) ([]domain.WorkShift, error)
	ListArchivedWorkShifts(ctx context.Context) ([]domain.ArchivedWorkShift, error)
	CreateWorkShift(ctx context.Context, req CreateWorkShiftRequest) (*domain.WorkShift, error)
	CompleteWorkShift(ctx context.Context, req CompleteWorkShiftRequest) (*domain.WorkShift, error)
	ArchiveWorkShift(ctx context.Context, shiftID string) error
}

type workShiftService struct {
	shiftsRepo repository.WorkShiftsRepository
	usersRepo  repository.UsersRepository
	logger     *zap.Logger
}

func NewWorkShiftService(shiftsRepo repository.WorkShiftsRepository, usersRepo repository.UsersRepository, logger *zap.Logger) WorkShiftService {
	return &workShiftService{shiftsRepo: shiftsRepo, usersRepo: usersRepo, logger: logger}
}

type CreateWorkShiftRequest struct {
	UserID     string
	Days       int
	AssignedBy string
	Reason     string
}

type CompleteWorkShiftRequest struct {
	ShiftID        string
	DaysToComplete int
	CompletedBy    string
}

func (s *workShiftService) ListWorkShifts(ctx context.Context, userID string) ([]domain.WorkShift, error) {
	if userID != "" && !validate.Identifier(userID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}
	return s.shiftsRepo.List(ctx, userID)
}

func (s *workShiftService) ListArchivedWorkShifts(ctx context.Context) ([]domain.ArchivedWorkShift, error) {
	return s.shiftsRepo.ListArchived(ctx)
}

func (s *workShiftService) CreateWorkShift(ctx context.Context, req CreateWorkShiftRequest) (*domain.WorkShift, error) {
	if req.UserID == "" || req.AssignedBy == "" || req.Days == 0 {
		return nil, domain.Invalid("userId", "User ID, days and assigned by required")
	}
	if !validate.Identifier(req.UserID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}
	if !validate.Identifier(req.AssignedBy) {
		return nil, domain.Invalid("assignedBy", "Valid Assigned By ID required")
	}
	if req.Days < 1 {
		return nil, domain.Invalid("days", "Days must be at least 1")
	}

	user, err := s.lookupUser(ctx, req.UserID, "User not found")
	if err != nil {
		return nil, err
	}
	assigner, err := s.lookupUser(ctx, req.AssignedBy, "Assigner not found")
	if err != nil {
		return nil, err
	}

	shift := &domain.WorkShift{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		UserName:       user.Name,
		Days:           req.Days,
		CompletedDays:  0,
		AssignedBy:     assigner.ID,
		AssignedByName: assigner.Name,
		Reason:         validate.Sanitize(req.Reason, 1000),
		AssignedAt:     nowUTC(),
	}
	if err := s.shiftsRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.logger.Info("work shift assigned",
		zap.String("shift_id", shift.ID),
		zap.String("user_id", shift.UserID),
		zap.Int("days", shift.Days))
	return shift, nil
}

func (s *workShiftService) CompleteWorkShift(ctx context.Context, req CompleteWorkShiftRequest) (*domain.WorkShift, error) {
	if !validate.Identifier(req.ShiftID) {
		return nil, domain.Invalid("shiftId", "Valid Shift ID required")
	}
	if req.DaysToComplete < 1 {
		return nil, domain.Invalid("daysToComplete", "Days to complete must be at least 1")
	}
	if !validate.Identifier(req.CompletedBy) {
		return nil, domain.Invalid("completedBy", "Valid Completed By ID required")
	}

	completer, err := s.lookupUser(ctx, req.CompletedBy, "Completer not found")
	if err != nil {
		return nil, err
	}

	shift, err := s.shiftsRepo.Complete(ctx, req.ShiftID, req.DaysToComplete, completer.ID, completer.Name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Work shift not found")
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("work shift progress",
		zap.String("shift_id", shift.ID),
		zap.Int("completed_days", shift.CompletedDays))
	return shift, nil
}

func (s *workShiftService) ArchiveWorkShift(ctx context.Context, shiftID string) error {
	if !validate.Identifier(shiftID) {
		return domain.Invalid("shiftId", "Valid Shift ID required")
	}
	err := s.shiftsRepo.Archive(ctx, shiftID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound("Work shift not found")
	case errors.Is(err, domain.ErrConflict):
		return domain.Conflict("Work shift already archived")
	case err != nil:
		return err
	}

	s.logger.Info("work shift archived", zap.String("shift_id", shiftID))
	return nil
}

func (s *workShiftService) lookupUser(ctx context.Context, userID, missing string) (*domain.User, error) {
	u, err := s.usersRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("userId", missing)
		}
		return nil, err
	}
	return u, nil
}
