package repository

import (
	"context"
	"database/sql"

	"dormportal/internal/domain"
)

type PostgresDutiesRepository struct {
	db *sql.DB
}

func NewPostgresDutiesRepository(db *sql.DB) *PostgresDutiesRepository {
	return &PostgresDutiesRepository{db: db}
}

var _ DutiesRepository = (*PostgresDutiesRepository)(nil)

func (r *PostgresDutiesRepository) List(ctx context.Context) ([]domain.DutySchedule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id::text, d.user_id::text, COALESCE(u.name, ''), d.date, d.zone, d.status, d.created_at
		FROM duty_schedule d
		LEFT JOIN users u ON d.user_id = u.id
		ORDER BY d.date DESC, d.zone`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	duties := []domain.DutySchedule{}
	for rows.Next() {
		var d domain.DutySchedule
		if err := rows.Scan(&d.ID, &d.UserID, &d.UserName, &d.Date, &d.Zone, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		duties = append(duties, d)
	}
	return duties, rows.Err()
}

func (r *PostgresDutiesRepository) Create(ctx context.Context, d *domain.DutySchedule) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO duty_schedule (id, user_id, date, zone, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.UserID, d.Date, d.Zone, d.Status, d.CreatedAt)
	return err
}

func (r *PostgresDutiesRepository) UpdateStatus(ctx context.Context, dutyID, status string) (*domain.DutySchedule, error) {
	var d domain.DutySchedule
	err := r.db.QueryRowContext(ctx,
		`UPDATE duty_schedule SET status = $1 WHERE id = $2
		 RETURNING id::text, user_id::text, date, zone, status, created_at`,
		status, dutyID).
		Scan(&d.ID, &d.UserID, &d.Date, &d.Zone, &d.Status, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
