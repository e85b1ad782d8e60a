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

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*domain.Task, error)
}

type taskService struct {
	tasksRepo repository.TasksRepository
	usersRepo repository.UsersRepository
	logger    *zap.Logger
}

func NewTaskService(tasksRepo repository.TasksRepository, usersRepo repository.UsersRepository, logger *zap.Logger) TaskService {
	return &taskService{tasksRepo: tasksRepo, usersRepo: usersRepo, logger: logger}
}

type CreateTaskRequest struct {
	Title       string
	Description string
	Status      string // defaults to pending
	Priority    string // defaults to medium
	AssignedTo  string
	DueDate     string // RFC3339, optional
}

// UpdateTaskRequest sparse update. AssignedTo/DueDate pointing at the empty
// string clear the field.
type UpdateTaskRequest struct {
	TaskID      string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssignedTo  *string
	DueDate     *string
}

func (s *taskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasksRepo.List(ctx)
}

func (s *taskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	title := validate.Sanitize(req.Title, 500)
	description := validate.Sanitize(req.Description, 10000)

	if title == "" {
		return nil, domain.Invalid("title", "Title required")
	}

	status := req.Status
	if status == "" {
		status = domain.DefaultTaskStatus
	}
	if !validate.Enum(status, domain.TaskStatuses) {
		return nil, domain.Invalid("status", "Invalid status")
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.DefaultTaskPriority
	}
	if !validate.Enum(priority, domain.TaskPriorities) {
		return nil, domain.Invalid("priority", "Invalid priority")
	}

	t := &domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: optional(description),
		Status:      status,
		Priority:    priority,
	}

	if req.AssignedTo != "" {
		assignee, err := s.resolveAssignee(ctx, req.AssignedTo)
		if err != nil {
			return nil, err
		}
		t.AssignedTo = &assignee.ID
		t.AssigneeName = &assignee.Name
	}

	if req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return nil, domain.Invalid("dueDate", "Invalid due date format")
		}
		due = due.UTC()
		t.DueDate = &due
	}

	now := nowUTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.tasksRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("task created", zap.String("task_id", t.ID), zap.String("priority", t.Priority))
	return t, nil
}

func (s *taskService) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*domain.Task, error) {
	if !validate.Identifier(req.TaskID) {
		return nil, domain.Invalid("taskId", "Valid Task ID required")
	}

	var fields repository.TaskUpdate
	if req.Title != nil {
		title := validate.Sanitize(*req.Title, 500)
		fields.Title = &title
	}
	if req.Description != nil {
		description := validate.Sanitize(*req.Description, 10000)
		fields.Description = &description
	}
	if req.Status != nil {
		if !validate.Enum(*req.Status, domain.TaskStatuses) {
			return nil, domain.Invalid("status", "Invalid status")
		}
		fields.Status = req.Status
	}
	if req.Priority != nil {
		if !validate.Enum(*req.Priority, domain.TaskPriorities) {
			return nil, domain.Invalid("priority", "Invalid priority")
		}
		fields.Priority = req.Priority
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			empty := ""
			fields.AssignedTo = &empty
		} else {
			assignee, err := s.resolveAssignee(ctx, *req.AssignedTo)
			if err != nil {
				return nil, err
			}
			fields.AssignedTo = &assignee.ID
			fields.AssigneeName = &assignee.Name
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			fields.ClearDueDate = true
		} else {
			due, err := time.Parse(time.RFC3339, *req.DueDate)
			if err != nil {
				return nil, domain.Invalid("dueDate", "Invalid due date format")
			}
			due = due.UTC()
			fields.DueDate = &due
		}
	}
	if fields.Empty() {
		return nil, domain.Invalid("", "No fields to update")
	}

	t, err := s.tasksRepo.Update(ctx, req.TaskID, fields)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Task not found")
	}
	return t, err
}

func (s *taskService) resolveAssignee(ctx context.Context, assignedTo string) (*domain.User, error) {
	if !validate.Identifier(assignedTo) {
		return nil, domain.Invalid("assignedTo", "Invalid Assigned To ID")
	}
	assignee, err := s.usersRepo.GetByID(ctx, assignedTo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("assignedTo", "Assignee not found")
		}
		return nil, err
	}
	return assignee, nil
}
