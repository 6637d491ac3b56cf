package account

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/account"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
	"github.com/BruksfildServices01/hotel-services/internal/validators"
)

type LoginInput struct {
	Email    string
	Password string
	Role     string
}

type LoginOutput struct {
	Session *auth.Session
	Account *models.Account
}

type Login struct {
	repo     domain.Repository
	sessions *auth.Manager
	audit    *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	sessions *auth.Manager,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginOutput, error) {

	requested, err := role.Parse(in.Role)
	if err != nil {
		return nil, err
	}

	acc, err := uc.repo.GetAccountByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrAuth("invalid_credentials")
		}
		return nil, err
	}
	if !auth.CheckPassword(acc.PasswordHash, in.Password) {
		return nil, httperr.ErrAuth("invalid_credentials")
	}

	sess, err := uc.sessions.Issue(ctx, acc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Selected role must match the stored one
	// --------------------------------------------------
	decision := access.Authorize(sess, access.SignIn, access.Resource{RequestedRole: requested})
	if !decision.Allow {
		if decision.Terminate {
			if err := uc.sessions.Revoke(ctx, sess); err != nil {
				return nil, err
			}
		}

		uc.audit.Dispatch(audit.Event{
			ActorAccountID: audit.Ptr(acc.ID),
			Action:         "login_role_mismatch",
			Entity:         "account",
			EntityID:       audit.Ptr(acc.ID),
			Metadata:       map[string]any{"requested": requested, "stored": acc.Role},
		})
		return nil, decision.Err()
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(acc.ID),
		Action:         "login",
		Entity:         "account",
		EntityID:       audit.Ptr(acc.ID),
	})

	return &LoginOutput{Session: sess, Account: acc}, nil
}
