package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"dormportal/internal/domain"
	"dormportal/internal/store"
)

const sessionKeyPrefix = "session:"

// Sessions issues opaque login tokens and resolves them back to user IDs.
// Tokens live in the KV store (memory by default, Redis when configured) so
// nothing here survives a restart unless Redis is in play.
type Sessions struct {
	kv  store.KV
	ttl time.Duration
}

func NewSessions(kv store.KV, ttl time.Duration) *Sessions {
	return &Sessions{kv: kv, ttl: ttl}
}

func (s *Sessions) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.kv.Set(ctx, sessionKeyPrefix+token, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Sessions) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.Unauthorized("Authentication required")
	}
	userID, err := s.kv.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return "", domain.Unauthorized("Invalid or expired token")
		}
		return "", err
	}
	return userID, nil
}

func (s *Sessions) Revoke(ctx context.Context, token string) error {
	return s.kv.Delete(ctx, sessionKeyPrefix+token)
}
