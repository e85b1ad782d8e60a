package repository

import (
	"context"
	"database/sql"

	"dormportal/internal/domain"
)

type PostgresTasksRepository struct {
	db *sql.DB
}

func NewPostgresTasksRepository(db *sql.DB) *PostgresTasksRepository {
	return &PostgresTasksRepository{db: db}
}

var _ TasksRepository = (*PostgresTasksRepository)(nil)

const taskColumns = `id::text, title, description, status, priority, assigned_to::text, due_date, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }, withAssignee bool) (*domain.Task, error) {
	var t domain.Task
	var description, assignedTo, assigneeName sql.NullString
	var dueDate sql.NullTime

	dest := []any{&t.ID, &t.Title, &description, &t.Status, &t.Priority, &assignedTo, &dueDate, &t.CreatedAt, &t.UpdatedAt}
	if withAssignee {
		dest = append(dest, &assigneeName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	t.Description = stringPtr(description)
	t.AssignedTo = stringPtr(assignedTo)
	t.AssigneeName = stringPtr(assigneeName)
	t.DueDate = timePtr(dueDate)
	return &t, nil
}

func (r *PostgresTasksRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id::text, t.title, t.description, t.status, t.priority,
		       t.assigned_to::text, t.due_date, t.created_at, t.updated_at, u.name
		FROM tasks t
		LEFT JOIN users u ON t.assigned_to = u.id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows, true)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *PostgresTasksRepository) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, status, priority, assigned_to, due_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Title, nullString(t.Description), t.Status, t.Priority,
		nullString(t.AssignedTo), nullTime(t.DueDate), t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *PostgresTasksRepository) Update(ctx context.Context, taskID string, fields TaskUpdate) (*domain.Task, error) {
	var b setBuilder
	if fields.Title != nil {
		b.add("title", *fields.Title)
	}
	if fields.Description != nil {
		b.add("description", nullString(fields.Description))
	}
	if fields.Status != nil {
		b.add("status", *fields.Status)
	}
	if fields.Priority != nil {
		b.add("priority", *fields.Priority)
	}
	if fields.AssignedTo != nil {
		b.add("assigned_to", nullString(fields.AssignedTo))
	}
	if fields.ClearDueDate {
		b.addExpr("due_date = NULL")
	} else if fields.DueDate != nil {
		b.add("due_date", *fields.DueDate)
	}
	if b.empty() {
		return r.getByID(ctx, taskID)
	}
	b.addExpr("updated_at = NOW()")

	query := `UPDATE tasks SET ` + b.clause() +
		` WHERE id = $` + itoa(b.next()) +
		` RETURNING ` + taskColumns
	t, err := scanTask(r.db.QueryRowContext(ctx, query, append(b.args, taskID)...), false)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return t, err
}

func (r *PostgresTasksRepository) getByID(ctx context.Context, taskID string) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, taskID), false)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return t, err
}
