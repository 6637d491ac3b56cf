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

// CreateServiceInput targets the caller's provider when ProviderID is zero.
type CreateServiceInput struct {
	ProviderID uint
	domain.Attrs
}

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateService {
	return &CreateService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	sess *auth.Session,
	in CreateServiceInput,
) (*models.Service, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	// --------------------------------------------------
	// Provider + ownership
	// --------------------------------------------------
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

	if err := access.Authorize(sess, access.CreateService, access.Resource{
		OwnerAccountID: p.AccountID,
	}).Err(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Attributes
	// --------------------------------------------------
	in.Attrs.Normalize()
	if err := in.Attrs.Validate(); err != nil {
		return nil, err
	}

	s := &models.Service{
		ProviderID:   p.ID,
		ProviderKind: p.Kind,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		DurationMin:  in.DurationMin,
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}
	s.Provider = *p

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "service_created",
		Entity:         "service",
		EntityID:       audit.Ptr(s.ID),
		Metadata: map[string]any{
			"name":     s.Name,
			"price":    s.Price,
			"duration": s.DurationMin,
		},
	})

	return s, nil
}
