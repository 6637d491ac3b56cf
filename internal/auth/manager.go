package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/hotel-services/internal/config"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

// Manager issues, validates and revokes sessions.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  SessionStore
	now    func() time.Time
}

func NewManager(cfg *config.Config, store SessionStore) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.SessionTTL,
		store:  store,
		now:    time.Now,
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (m *Manager) Issue(ctx context.Context, acc *models.Account) (*Session, error) {
	now := m.now()
	sess := &Session{
		ID:        uuid.NewString(),
		AccountID: acc.ID,
		Role:      acc.Role,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := Claims{
		Role: acc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   strconv.FormatUint(uint64(acc.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}
	sess.Token = token

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Validate returns the live session behind token.
func (m *Manager) Validate(ctx context.Context, token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, httperr.ErrAuth("session_expired")
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" || !claims.Role.Valid() {
		return nil, httperr.ErrAuth("session_expired")
	}

	active, err := m.store.Active(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, httperr.ErrAuth("session_expired")
	}

	sess := &Session{
		ID:        claims.ID,
		AccountID: uint(accountID),
		Role:      claims.Role,
		Token:     token,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

func (m *Manager) Revoke(ctx context.Context, sess *Session) error {
	if sess == nil {
		return errors.New("auth: revoke nil session")
	}
	return m.store.Revoke(ctx, sess.ID)
}

// RevokeAll ends every live session of the account.
func (m *Manager) RevokeAll(ctx context.Context, accountID uint) error {
	return m.store.RevokeAll(ctx, accountID)
}
