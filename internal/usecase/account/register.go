package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/account"
	"github.com/BruksfildServices01/hotel-services/internal/domain/provider"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
	"github.com/BruksfildServices01/hotel-services/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string

	// vendors only
	ServiceCategory string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	checkDomain bool
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
	checkDomain bool,
) *Register {
	return &Register{
		repo:        repo,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Account, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("invalid_email", "email")
	}
	if uc.checkDomain && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "email")
	}

	if !validators.IsStrongPassword(in.Password) {
		return nil, httperr.ErrValidation("weak_password", "password")
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, httperr.ErrValidation("name_required", "full_name")
	}

	r, err := role.Parse(in.Role)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Account (+ provider) in one transaction
	// --------------------------------------------------
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         r,
	}

	var prov *models.Provider
	if r.IsProvider() {
		prov = &models.Provider{
			Kind:         r,
			Name:         fullName,
			ContactEmail: email,
		}
		if r == role.Vendor {
			prov.ServiceCategory = strings.ToLower(strings.TrimSpace(in.ServiceCategory))
			if prov.ServiceCategory == "" {
				prov.ServiceCategory = provider.DefaultServiceCategory
			}
		}
	}

	if err := uc.repo.CreateAccount(ctx, acc, prov); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(acc.ID),
		Action:         "account_registered",
		Entity:         "account",
		EntityID:       audit.Ptr(acc.ID),
		Metadata:       map[string]any{"role": r},
	})

	return acc, nil
}
