package provider

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hotel-services/internal/models"
)

const DefaultServiceCategory = "general"

// Details are the owner-editable fields of a provider profile.
type Details struct {
	Name            string
	ContactEmail    string
	ServiceCategory string
}

func (d *Details) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.ContactEmail = strings.ToLower(strings.TrimSpace(d.ContactEmail))
	d.ServiceCategory = strings.ToLower(strings.TrimSpace(d.ServiceCategory))
}

type Repository interface {
	GetAccount(
		ctx context.Context,
		accountID uint,
	) (*models.Account, error)

	CreateProvider(
		ctx context.Context,
		p *models.Provider,
	) error

	GetProviderByID(
		ctx context.Context,
		providerID uint,
	) (*models.Provider, error)

	GetProviderByAccount(
		ctx context.Context,
		accountID uint,
	) (*models.Provider, error)

	UpdateProvider(
		ctx context.Context,
		p *models.Provider,
	) error
}
