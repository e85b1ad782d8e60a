package repository

import (
	"context"
	"sort"
	"sync"

	"dormportal/internal/domain"
)

// MemoryUsersRepository backs the API when no DATABASE_URL is configured.
// Also the substrate for unit tests.
type MemoryUsersRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUsersRepository() *MemoryUsersRepository {
	return &MemoryUsersRepository{users: map[string]domain.User{}}
}

var _ UsersRepository = (*MemoryUsersRepository)(nil)

func (r *MemoryUsersRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, copyUser(u))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *MemoryUsersRepository) GetByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copyUser(u)
	return &out, nil
}

func (r *MemoryUsersRepository) GetByCredentials(_ context.Context, email, passwordDigest string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email && u.PasswordDigest == passwordDigest {
			out := copyUser(u)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryUsersRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrConflict
		}
	}
	r.users[user.ID] = copyUser(*user)
	return nil
}

func (r *MemoryUsersRepository) Update(_ context.Context, userID string, fields UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Room != nil {
		u.Room = emptyToNil(fields.Room)
	}
	if fields.Group != nil {
		u.Group = emptyToNil(fields.Group)
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.HasPositions {
		u.Positions = append([]string{}, fields.Positions...)
	}
	r.users[userID] = u
	out := copyUser(u)
	return &out, nil
}

func (r *MemoryUsersRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, userID)
	return nil
}

func copyUser(u domain.User) domain.User {
	u.Positions = append([]string{}, u.Positions...)
	if u.Room != nil {
		room := *u.Room
		u.Room = &room
	}
	if u.Group != nil {
		group := *u.Group
		u.Group = &group
	}
	return u
}

func emptyToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	s := *p
	return &s
}
