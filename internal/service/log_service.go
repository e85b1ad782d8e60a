package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dormportal/internal/domain"
	"dormportal/internal/repository"
	"dormportal/internal/validate"
)

const DefaultLogLimit = 100

type LogService interface {
	ListLogs(ctx context.Context, limit int) ([]domain.LogEntry, error)
	AppendLog(ctx context.Context, req AppendLogRequest) (*domain.LogEntry, error)
	// PurgeLogs wipes the table and reports the number of removed entries.
	PurgeLogs(ctx context.Context) (int64, error)
}

type logService struct {
	logsRepo  repository.LogsRepository
	usersRepo repository.UsersRepository
	logger    *zap.Logger
}

func NewLogService(logsRepo repository.LogsRepository, usersRepo repository.UsersRepository, logger *zap.Logger) LogService {
	return &logService{logsRepo: logsRepo, usersRepo: usersRepo, logger: logger}
}

type AppendLogRequest struct {
	UserID  string
	Action  string
	Details json.RawMessage
}

func (s *logService) ListLogs(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return s.logsRepo.List(ctx, limit)
}

func (s *logService) AppendLog(ctx context.Context, req AppendLogRequest) (*domain.LogEntry, error) {
	action := validate.Sanitize(req.Action, 255)
	if action == "" {
		return nil, domain.Invalid("action", "Action required")
	}
	if !validate.Identifier(req.UserID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}

	// The actor name is denormalized into the entry so the trail survives
	// user deletion.
	actor, err := s.usersRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("userId", "User not found")
		}
		return nil, err
	}

	details := req.Details
	if len(details) == 0 {
		details = json.RawMessage("{}")
	} else if !json.Valid(details) {
		return nil, domain.Invalid("details", "Details must be valid JSON")
	}

	e := &domain.LogEntry{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Details:   details,
		CreatedAt: nowUTC(),
	}
	if err := s.logsRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *logService) PurgeLogs(ctx context.Context) (int64, error) {
	n, err := s.logsRepo.Purge(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("audit log purged", zap.Int64("deleted", n))
	return n, nil
}
