package repository

import (
	"context"
	"database/sql"

	"dormportal/internal/domain"
)

type PostgresLogsRepository struct {
	db *sql.DB
}

func NewPostgresLogsRepository(db *sql.DB) *PostgresLogsRepository {
	return &PostgresLogsRepository{db: db}
}

var _ LogsRepository = (*PostgresLogsRepository)(nil)

func (r *PostgresLogsRepository) List(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, user_id::text, user_name, action, details::text, created_at
		 FROM logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		var e domain.LogEntry
		var details string
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Action, &details, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Details = []byte(details)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresLogsRepository) Create(ctx context.Context, e *domain.LogEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO logs (id, user_id, user_name, action, details, created_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
		e.ID, e.UserID, e.UserName, e.Action, string(e.Details), e.CreatedAt)
	return err
}

func (r *PostgresLogsRepository) Purge(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM logs`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
