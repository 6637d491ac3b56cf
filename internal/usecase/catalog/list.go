package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/catalog"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

// ======================================================
// PUBLIC CATALOG
// ======================================================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute lists every live service; providerKind narrows to hotel or vendor.
func (uc *ListServices) Execute(
	ctx context.Context,
	sess *auth.Session,
	providerKind string,
) ([]models.Service, error) {

	if err := access.Authorize(sess, access.ReadService, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	var filter domain.Filter
	if strings.TrimSpace(providerKind) != "" {
		kind, err := role.ParseProviderKind(providerKind)
		if err != nil {
			return nil, err
		}
		filter.ProviderKind = kind
	}

	return uc.repo.ListServices(ctx, filter)
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(
	ctx context.Context,
	sess *auth.Session,
	serviceID uint,
) (*models.Service, error) {

	if err := access.Authorize(sess, access.ReadService, access.Resource{}).Err(); err != nil {
		return nil, err
	}
	return uc.repo.GetService(ctx, serviceID)
}

// ======================================================
// PROVIDER'S OWN SERVICES
// ======================================================

type ListProviderServices struct {
	repo domain.Repository
}

func NewListProviderServices(repo domain.Repository) *ListProviderServices {
	return &ListProviderServices{repo: repo}
}

func (uc *ListProviderServices) Execute(
	ctx context.Context,
	sess *auth.Session,
) ([]models.Service, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	p, err := uc.repo.GetProviderByAccount(ctx, sess.AccountID)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListServicesForProvider(ctx, p.ID, string(p.Kind))
}
