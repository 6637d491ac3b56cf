package catalog

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/catalog"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

// UpdateServiceInput is a partial update; nil fields keep their value.
type UpdateServiceInput struct {
	ServiceID   uint
	Name        *string
	Description *string
	Price       *float64
	DurationMin *int
}

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateService {
	return &UpdateService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	sess *auth.Session,
	in UpdateServiceInput,
) (*models.Service, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	s, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(sess, access.UpdateService, access.Resource{
		OwnerAccountID: s.Provider.AccountID,
	}).Err(); err != nil {
		return nil, err
	}

	attrs := domain.Attrs{
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		DurationMin: s.DurationMin,
	}
	if in.Name != nil {
		attrs.Name = *in.Name
	}
	if in.Description != nil {
		attrs.Description = *in.Description
	}
	if in.Price != nil {
		attrs.Price = *in.Price
	}
	if in.DurationMin != nil {
		attrs.DurationMin = *in.DurationMin
	}

	attrs.Normalize()
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	s.Name = attrs.Name
	s.Description = attrs.Description
	s.Price = attrs.Price
	s.DurationMin = attrs.DurationMin

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "service_updated",
		Entity:         "service",
		EntityID:       audit.Ptr(s.ID),
	})

	return s, nil
}
