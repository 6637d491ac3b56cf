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

// UpdateProviderInput leaves empty fields unchanged. A zero ProviderID
// targets the caller's own provider.
type UpdateProviderInput struct {
	ProviderID uint
	domain.Details
}

type UpdateProvider struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProvider(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateProvider {
	return &UpdateProvider{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateProvider) Execute(
	ctx context.Context,
	sess *auth.Session,
	in UpdateProviderInput,
) (*models.Provider, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	var (
		p   *models.Provider
		err error
	)
	if in.ProviderID != 0 {
		p, err = uc.repo.GetProviderByID(ctx, in.ProviderID)
	} else {
		p, err = uc.repo.GetProviderByAccount(ctx, sess.AccountID)
	}
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(sess, access.UpdateProvider, access.Resource{
		OwnerAccountID: p.AccountID,
	}).Err(); err != nil {
		return nil, err
	}

	in.Details.Normalize()
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.ContactEmail != "" {
		if !validators.IsEmail(in.ContactEmail) {
			return nil, httperr.ErrValidation("invalid_email", "contact_email")
		}
		p.ContactEmail = in.ContactEmail
	}
	if in.ServiceCategory != "" && p.Kind == role.Vendor {
		p.ServiceCategory = in.ServiceCategory
	}

	if err := uc.repo.UpdateProvider(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "provider_updated",
		Entity:         "provider",
		EntityID:       audit.Ptr(p.ID),
	})

	return p, nil
}
