package provider

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/provider"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
	"github.com/BruksfildServices01/hotel-services/internal/validators"
)

type CreateProviderInput struct {
	Role string
	domain.Details
}

type CreateProvider struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateProvider(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateProvider {
	return &CreateProvider{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateProvider) Execute(
	ctx context.Context,
	sess *auth.Session,
	in CreateProviderInput,
) (*models.Provider, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	kind, err := role.ParseProviderKind(in.Role)
	if err != nil {
		return nil, err
	}

	acc, err := uc.repo.GetAccount(ctx, sess.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.Role != kind {
		return nil, httperr.ErrValidation("invalid_role", "role")
	}

	if err := access.Authorize(sess, access.CreateProvider, access.Resource{
		OwnerAccountID: acc.ID,
	}).Err(); err != nil {
		return nil, err
	}

	in.Details.Normalize()
	if in.Name == "" {
		in.Name = acc.FullName
	}
	if in.ContactEmail == "" {
		in.ContactEmail = acc.Email
	}
	if !validators.IsEmail(in.ContactEmail) {
		return nil, httperr.ErrValidation("invalid_email", "contact_email")
	}

	p := &models.Provider{
		AccountID:    acc.ID,
		Kind:         kind,
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
	}
	if kind == role.Vendor {
		p.ServiceCategory = in.ServiceCategory
		if p.ServiceCategory == "" {
			p.ServiceCategory = domain.DefaultServiceCategory
		}
	}

	if err := uc.repo.CreateProvider(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(acc.ID),
		Action:         "provider_created",
		Entity:         "provider",
		EntityID:       audit.Ptr(p.ID),
		Metadata:       map[string]any{"kind": kind},
	})

	return p, nil
}
