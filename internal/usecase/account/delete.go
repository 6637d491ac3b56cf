package account

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/account"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

type DeleteAccount struct {
	repo     domain.Repository
	sessions *auth.Manager
	audit    *audit.Dispatcher
}

func NewDeleteAccount(
	repo domain.Repository,
	sessions *auth.Manager,
	audit *audit.Dispatcher,
) *DeleteAccount {
	return &DeleteAccount{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *DeleteAccount) Execute(ctx context.Context, sess *auth.Session) error {
	if sess == nil {
		return httperr.ErrAuth("not_authenticated")
	}

	acc, err := uc.repo.GetAccount(ctx, sess.AccountID)
	if err != nil {
		return err
	}

	if acc.Provider != nil {
		active, err := uc.repo.CountActiveProviderBookings(ctx, acc.Provider.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return httperr.ErrConflict("provider_has_active_bookings")
		}
	}

	if err := uc.repo.DeleteAccount(ctx, acc.ID); err != nil {
		return err
	}
	if err := uc.sessions.RevokeAll(ctx, acc.ID); err != nil {
		return err
	}

	// the audit row outlives the account; actor stays for traceability
	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(acc.ID),
		Action:         "account_deleted",
		Entity:         "account",
		EntityID:       audit.Ptr(acc.ID),
		Metadata:       map[string]any{"email": acc.Email, "role": acc.Role},
	})
	return nil
}
