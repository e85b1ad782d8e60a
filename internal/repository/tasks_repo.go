package repository

import (
	"context"
	"time"

	"dormportal/internal/domain"
)

type TasksRepository interface {
	// List returns all tasks newest first, with the assignee name resolved.
	List(ctx context.Context) ([]domain.Task, error)

	Create(ctx context.Context, t *domain.Task) error

	// Update applies only the fields present in the sparse set and returns
	// the updated row. The assignee name is not re-resolved on update.
	Update(ctx context.Context, taskID string, fields TaskUpdate) (*domain.Task, error)
}

// TaskUpdate sparse field set. AssignedTo pointing at the empty string
// clears the assignee; ClearDueDate clears the due date.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	AssignedTo   *string
	AssigneeName *string // resolved by the service alongside AssignedTo
	DueDate      *time.Time
	ClearDueDate bool
}

func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.Priority == nil && u.AssignedTo == nil && u.DueDate == nil && !u.ClearDueDate
}
