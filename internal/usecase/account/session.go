package account

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/account"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

// ======================================================
// SIGN OUT
// ======================================================

type SignOut struct {
	sessions *auth.Manager
	audit    *audit.Dispatcher
}

func NewSignOut(sessions *auth.Manager, audit *audit.Dispatcher) *SignOut {
	return &SignOut{sessions: sessions, audit: audit}
}

func (uc *SignOut) Execute(ctx context.Context, sess *auth.Session) error {
	if sess == nil {
		return httperr.ErrAuth("not_authenticated")
	}
	if err := uc.sessions.Revoke(ctx, sess); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "logout",
		Entity:         "account",
		EntityID:       audit.Ptr(sess.AccountID),
	})
	return nil
}

// ======================================================
// ME
// ======================================================

type GetMe struct {
	repo domain.Repository
}

func NewGetMe(repo domain.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, sess *auth.Session) (*models.Account, error) {
	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}
	return uc.repo.GetAccount(ctx, sess.AccountID)
}
