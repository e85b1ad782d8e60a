package repository

import (
	"context"

	"dormportal/internal/domain"
)

// UsersRepository data access for the users table. Implementations return
// bare error kinds (domain.ErrNotFound, domain.ErrConflict); services attach
// the user-facing message.
type UsersRepository interface {
	// List returns all users ordered by name.
	List(ctx context.Context) ([]domain.User, error)

	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// GetByCredentials matches email and password digest in one lookup so a
	// caller cannot tell which of the two was wrong.
	GetByCredentials(ctx context.Context, email, passwordDigest string) (*domain.User, error)

	// Create inserts the user. domain.ErrConflict on a duplicate email.
	Create(ctx context.Context, user *domain.User) error

	// Update applies only the fields present in the sparse set and returns
	// the updated row.
	Update(ctx context.Context, userID string, fields UserUpdate) (*domain.User, error)

	Delete(ctx context.Context, userID string) error
}

// UserUpdate sparse field set for partial updates. nil means "leave alone";
// for Room/Group a pointer to the empty string clears the column.
type UserUpdate struct {
	Name         *string
	Room         *string
	Group        *string
	Role         *string
	Positions    []string
	HasPositions bool
}

// Empty reports whether no field was provided at all.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Room == nil && u.Group == nil && u.Role == nil && !u.HasPositions
}
