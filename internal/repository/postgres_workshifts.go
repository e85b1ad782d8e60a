package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dormportal/internal/domain"
)

type PostgresWorkShiftsRepository struct {
	db *sql.DB
}

func NewPostgresWorkShiftsRepository(db *sql.DB) *PostgresWorkShiftsRepository {
	return &PostgresWorkShiftsRepository{db: db}
}

var _ WorkShiftsRepository = (*PostgresWorkShiftsRepository)(nil)

const workShiftColumns = `id::text, user_id::text, user_name, days, completed_days,
	assigned_by::text, assigned_by_name, reason, is_archived, assigned_at,
	completed_at, completed_by::text, completed_by_name`

func scanWorkShift(row interface{ Scan(...any) error }) (*domain.WorkShift, error) {
	var s domain.WorkShift
	var completedAt sql.NullTime
	var completedBy, completedByName sql.NullString
	if err := row.Scan(&s.ID, &s.UserID, &s.UserName, &s.Days, &s.CompletedDays,
		&s.AssignedBy, &s.AssignedByName, &s.Reason, &s.IsArchived, &s.AssignedAt,
		&completedAt, &completedBy, &completedByName); err != nil {
		return nil, err
	}
	s.CompletedAt = timePtr(completedAt)
	s.CompletedBy = stringPtr(completedBy)
	s.CompletedByName = stringPtr(completedByName)
	return &s, nil
}

func (r *PostgresWorkShiftsRepository) List(ctx context.Context, userID string) ([]domain.WorkShift, error) {
	query := `SELECT ` + workShiftColumns + ` FROM work_shifts WHERE is_archived = FALSE`
	args := []any{}
	if userID != "" {
		args = append(args, userID)
		query += ` AND user_id = $1`
	}
	query += ` ORDER BY assigned_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []domain.WorkShift{}
	for rows.Next() {
		s, err := scanWorkShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *s)
	}
	return shifts, rows.Err()
}

func (r *PostgresWorkShiftsRepository) ListArchived(ctx context.Context) ([]domain.ArchivedWorkShift, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id::text, user_id::text, user_name, days, completed_days,
		       assigned_by::text, assigned_by_name, reason, assigned_at, archived_at
		FROM archived_work_shifts
		ORDER BY archived_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []domain.ArchivedWorkShift{}
	for rows.Next() {
		var s domain.ArchivedWorkShift
		if err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.Days, &s.CompletedDays,
			&s.AssignedBy, &s.AssignedByName, &s.Reason, &s.AssignedAt, &s.ArchivedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *PostgresWorkShiftsRepository) Create(ctx context.Context, s *domain.WorkShift) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO work_shifts (id, user_id, user_name, days, completed_days,
		                          assigned_by, assigned_by_name, reason, is_archived, assigned_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)`,
		s.ID, s.UserID, s.UserName, s.Days, s.CompletedDays,
		s.AssignedBy, s.AssignedByName, s.Reason, s.AssignedAt)
	return err
}

func (r *PostgresWorkShiftsRepository) Complete(ctx context.Context, shiftID string, days int, completedBy, completedByName string) (*domain.WorkShift, error) {
	s, err := scanWorkShift(r.db.QueryRowContext(ctx,
		`UPDATE work_shifts
		 SET completed_days = completed_days + $1,
		     completed_by = $2,
		     completed_by_name = $3,
		     completed_at = NOW()
		 WHERE id = $4 AND is_archived = FALSE
		 RETURNING `+workShiftColumns,
		days, completedBy, completedByName, shiftID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return s, err
}

// Archive moves the shift into archived_work_shifts inside one transaction:
// a reader of either table during the move sees the shift in exactly one of
// {active, archived}.
func (r *PostgresWorkShiftsRepository) Archive(ctx context.Context, shiftID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var isArchived bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_archived FROM work_shifts WHERE id = $1 FOR UPDATE`, shiftID).
		Scan(&isArchived)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if isArchived {
		return domain.ErrConflict
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO archived_work_shifts (id, user_id, user_name, days, completed_days,
		                                   assigned_by, assigned_by_name, reason, assigned_at, archived_at)
		 SELECT id, user_id, user_name, days, completed_days,
		        assigned_by, assigned_by_name, reason, assigned_at, NOW()
		 FROM work_shifts WHERE id = $1`, shiftID); err != nil {
		return fmt.Errorf("archive copy: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE work_shifts SET is_archived = TRUE, archived_at = NOW() WHERE id = $1`, shiftID); err != nil {
		return fmt.Errorf("archive flag: %w", err)
	}

	return tx.Commit()
}
