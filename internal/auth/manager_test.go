package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/auth/authtest"
	"github.com/BruksfildServices01/hotel-services/internal/config"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

func newManager(ttl time.Duration) (*auth.Manager, *authtest.MemoryStore) {
	store := authtest.NewMemoryStore()
	cfg := &config.Config{JWTSecret: "test-secret", SessionTTL: ttl}
	return auth.NewManager(cfg, store), store
}

func TestIssueAndValidate(t *testing.T) {
	m, _ := newManager(time.Hour)
	ctx := context.Background()

	acc := &models.Account{ID: 42, Role: role.Hotel}
	sess, err := m.Issue(ctx, acc)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if sess.Token == "" || sess.ID == "" {
		t.Fatal("Expected token and session id")
	}

	got, err := m.Validate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.AccountID != 42 || got.Role != role.Hotel || got.ID != sess.ID {
		t.Errorf("Unexpected session %+v", got)
	}
}

func TestValidate_RevokedSession(t *testing.T) {
	m, store := newManager(time.Hour)
	ctx := context.Background()

	sess, _ := m.Issue(ctx, &models.Account{ID: 1, Role: role.Guest})
	if err := m.Revoke(ctx, sess); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if _, err := m.Validate(ctx, sess.Token); !httperr.IsBusiness(err, "session_expired") {
		t.Errorf("Expected session_expired, got %v", err)
	}
	if len(store.Revoked) != 1 {
		t.Errorf("Expected 1 revocation, got %d", len(store.Revoked))
	}
}

func TestRevokeAll(t *testing.T) {
	m, store := newManager(time.Hour)
	ctx := context.Background()

	a1, _ := m.Issue(ctx, &models.Account{ID: 1, Role: role.Guest})
	a2, _ := m.Issue(ctx, &models.Account{ID: 1, Role: role.Guest})
	b, _ := m.Issue(ctx, &models.Account{ID: 2, Role: role.Guest})

	if err := m.RevokeAll(ctx, 1); err != nil {
		t.Fatalf("revoke all: %v", err)
	}

	for _, sess := range []*auth.Session{a1, a2} {
		if _, err := m.Validate(ctx, sess.Token); !httperr.IsBusiness(err, "session_expired") {
			t.Errorf("Expected session_expired, got %v", err)
		}
	}
	if _, err := m.Validate(ctx, b.Token); err != nil {
		t.Errorf("Expected account 2 session to survive, got %v", err)
	}
	if len(store.Revoked) != 2 {
		t.Errorf("Expected 2 revocations, got %d", len(store.Revoked))
	}
}

func TestValidate_RejectsForeignSignature(t *testing.T) {
	m, _ := newManager(time.Hour)
	other := auth.NewManager(&config.Config{JWTSecret: "other", SessionTTL: time.Hour}, authtest.NewMemoryStore())
	ctx := context.Background()

	sess, _ := other.Issue(ctx, &models.Account{ID: 1, Role: role.Guest})
	if _, err := m.Validate(ctx, sess.Token); !httperr.IsKind(err, httperr.KindAuth) {
		t.Errorf("Expected auth error, got %v", err)
	}
	if _, err := m.Validate(ctx, "not-a-jwt"); !httperr.IsKind(err, httperr.KindAuth) {
		t.Errorf("Expected auth error for garbage, got %v", err)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	m, _ := newManager(time.Nanosecond)
	ctx := context.Background()

	sess, err := m.Issue(ctx, &models.Account{ID: 1, Role: role.Guest})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)

	if _, err := m.Validate(ctx, sess.Token); !httperr.IsBusiness(err, "session_expired") {
		t.Errorf("Expected session_expired, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Error("Password should be hashed, not plain text")
	}
	if !auth.CheckPassword(hash, "secret1") {
		t.Error("Expected password to match")
	}
	if auth.CheckPassword(hash, "secret2") {
		t.Error("Expected wrong password to fail")
	}
}
