package provider

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/provider"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type GetProvider struct {
	repo domain.Repository
}

func NewGetProvider(repo domain.Repository) *GetProvider {
	return &GetProvider{repo: repo}
}

// Execute returns the caller's provider; provider_not_found when it has none.
func (uc *GetProvider) Execute(
	ctx context.Context,
	sess *auth.Session,
) (*models.Provider, error) {
	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}
	return uc.repo.GetProviderByAccount(ctx, sess.AccountID)
}
