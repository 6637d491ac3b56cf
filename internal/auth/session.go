package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
)

// Session is an authenticated caller. A nil *Session is an anonymous caller.
type Session struct {
	ID        string
	AccountID uint
	Role      role.Role
	ExpiresAt time.Time
	Token     string
}

// SessionStore tracks which session ids are still live.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Active(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeAll(ctx context.Context, accountID uint) error
}

type Claims struct {
	Role role.Role `json:"role"`
	jwt.RegisteredClaims
}
