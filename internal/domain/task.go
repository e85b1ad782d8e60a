package domain

import "time"

// Task is a council task. Status transitions are unconstrained: any enum
// value may follow any other.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	AssignedTo   *string    `json:"assignedTo"`
	AssigneeName *string    `json:"assigneeName"`
	DueDate      *time.Time `json:"dueDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

var (
	TaskStatuses   = []string{"pending", "in_progress", "completed", "cancelled"}
	TaskPriorities = []string{"low", "medium", "high", "urgent"}
)

const (
	DefaultTaskStatus   = "pending"
	DefaultTaskPriority = "medium"
)
