package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dormportal/internal/auth"
	"dormportal/internal/domain"
	"dormportal/internal/repository"
	"dormportal/internal/validate"
)

// UserService manages accounts and login.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	// Login returns the matched user and a fresh session token.
	Login(ctx context.Context, req LoginRequest) (*domain.User, string, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	usersRepo repository.UsersRepository
	sessions  *auth.Sessions
	logger    *zap.Logger
}

func NewUserService(usersRepo repository.UsersRepository, sessions *auth.Sessions, logger *zap.Logger) UserService {
	return &userService{usersRepo: usersRepo, sessions: sessions, logger: logger}
}

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Room     string
	Group    string
}

type LoginRequest struct {
	Email    string
	Password string
}

// UpdateUserRequest sparse update; nil means "leave alone".
type UpdateUserRequest struct {
	UserID    string
	Name      *string
	Room      *string
	Group     *string
	Role      *string
	Positions *[]string
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.usersRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if !validate.Identifier(userID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}
	u, err := s.usersRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("User not found")
	}
	return u, err
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := validate.Sanitize(req.Email, 255)
	name := validate.Sanitize(req.Name, 255)
	room := validate.Sanitize(req.Room, 50)
	group := validate.Sanitize(req.Group, 50)

	if email == "" || req.Password == "" || name == "" {
		return nil, domain.Invalid("email", "Email, password and name required")
	}
	if !validate.Email(email) {
		return nil, domain.Invalid("email", "Invalid email format")
	}
	if len(req.Password) < 6 {
		return nil, domain.Invalid("password", "Password must be at least 6 characters")
	}
	if len(req.Password) > 32 {
		return nil, domain.Invalid("password", "Password must be 32 characters or less")
	}

	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordDigest: auth.DigestPassword(req.Password),
		Name:           name,
		Role:           domain.DefaultUserRole,
		Room:           optional(room),
		Group:          optional(group),
		Positions:      []string{},
	}
	if err := s.usersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict("Email already exists")
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	email := validate.Sanitize(req.Email, 255)
	if email == "" || req.Password == "" {
		return nil, "", domain.Invalid("email", "Email and password required")
	}
	if !validate.Email(email) {
		return nil, "", domain.Invalid("email", "Invalid email format")
	}
	if len(req.Password) > 32 {
		return nil, "", domain.Invalid("password", "Password must be 32 characters or less")
	}

	// One lookup against email + digest: the error never says which half
	// failed, and neither the password nor the digest goes anywhere else.
	user, err := s.usersRepo.GetByCredentials(ctx, email, auth.DigestPassword(req.Password))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.Unauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

func (s *userService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*domain.User, error) {
	if !validate.Identifier(req.UserID) {
		return nil, domain.Invalid("userId", "Valid User ID required")
	}

	var fields repository.UserUpdate
	if req.Name != nil {
		name := validate.Sanitize(*req.Name, 255)
		fields.Name = &name
	}
	if req.Room != nil {
		room := validate.Sanitize(*req.Room, 50)
		fields.Room = &room
	}
	if req.Group != nil {
		group := validate.Sanitize(*req.Group, 50)
		fields.Group = &group
	}
	if req.Role != nil {
		if !validate.Enum(*req.Role, domain.UserRoles) {
			return nil, domain.Invalid("role", "Invalid role")
		}
		fields.Role = req.Role
	}
	if req.Positions != nil {
		fields.Positions = *req.Positions
		fields.HasPositions = true
	}
	if fields.Empty() {
		return nil, domain.Invalid("", "No fields to update")
	}

	user, err := s.usersRepo.Update(ctx, req.UserID, fields)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("User not found")
	}
	return user, err
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if !validate.Identifier(userID) {
		return domain.Invalid("userId", "Valid User ID required")
	}
	err := s.usersRepo.Delete(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("User not found")
	}
	if err == nil {
		s.logger.Info("user deleted", zap.String("user_id", userID))
	}
	return err
}

// optional maps the empty string to an absent column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nowUTC is the single time source for server-assigned timestamps.
var nowUTC = func() time.Time { return time.Now().UTC() }
