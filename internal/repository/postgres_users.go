package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"dormportal/internal/domain"
)

type PostgresUsersRepository struct {
	db *sql.DB
}

func NewPostgresUsersRepository(db *sql.DB) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db}
}

var _ UsersRepository = (*PostgresUsersRepository)(nil)

const userColumns = `id::text, email, name, role, room, room_group, positions`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	var room, group sql.NullString
	var positions pq.StringArray
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &room, &group, &positions); err != nil {
		return nil, err
	}
	u.Room = stringPtr(room)
	u.Group = stringPtr(group)
	u.Positions = []string(positions)
	if u.Positions == nil {
		u.Positions = []string{}
	}
	return &u, nil
}

func (r *PostgresUsersRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *PostgresUsersRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *PostgresUsersRepository) GetByCredentials(ctx context.Context, email, passwordDigest string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND password_digest = $2`,
		email, passwordDigest))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *PostgresUsersRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_digest, name, role, room, room_group, positions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordDigest, user.Name, user.Role,
		nullString(user.Room), nullString(user.Group), pq.Array(user.Positions))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *PostgresUsersRepository) Update(ctx context.Context, userID string, fields UserUpdate) (*domain.User, error) {
	var b setBuilder
	if fields.Name != nil {
		b.add("name", *fields.Name)
	}
	if fields.Room != nil {
		b.add("room", nullString(fields.Room))
	}
	if fields.Group != nil {
		b.add("room_group", nullString(fields.Group))
	}
	if fields.Role != nil {
		b.add("role", *fields.Role)
	}
	if fields.HasPositions {
		b.add("positions", pq.Array(fields.Positions))
	}
	if b.empty() {
		return r.GetByID(ctx, userID)
	}
	b.addExpr("updated_at = NOW()")

	query := `UPDATE users SET ` + b.clause() +
		` WHERE id = $` + itoa(b.next()) +
		` RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRowContext(ctx, query, append(b.args, userID)...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *PostgresUsersRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
