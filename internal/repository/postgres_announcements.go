package repository

import (
	"context"
	"database/sql"

	"dormportal/internal/domain"
)

type PostgresAnnouncementsRepository struct {
	db *sql.DB
}

func NewPostgresAnnouncementsRepository(db *sql.DB) *PostgresAnnouncementsRepository {
	return &PostgresAnnouncementsRepository{db: db}
}

var _ AnnouncementsRepository = (*PostgresAnnouncementsRepository)(nil)

func (r *PostgresAnnouncementsRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id::text, a.title, a.content, a.author_id::text, COALESCE(u.name, ''), a.created_at
		FROM announcements a
		LEFT JOIN users u ON a.author_id = u.id
		ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []domain.Announcement{}
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.AuthorName, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *PostgresAnnouncementsRepository) Create(ctx context.Context, a *domain.Announcement) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO announcements (id, title, content, author_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Title, a.Content, a.AuthorID, a.CreatedAt)
	return err
}
