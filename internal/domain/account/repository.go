package account

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type Repository interface {
	GetAccountByEmail(
		ctx context.Context,
		email string,
	) (*models.Account, error)

	// GetAccount preloads the provider, if any.
	GetAccount(
		ctx context.Context,
		accountID uint,
	) (*models.Account, error)

	// CreateAccount inserts the account and, when p is non-nil, its provider
	// in the same transaction.
	CreateAccount(
		ctx context.Context,
		a *models.Account,
		p *models.Provider,
	) error

	CountActiveProviderBookings(
		ctx context.Context,
		providerID uint,
	) (int64, error)

	// DeleteAccount removes the account with its provider, services and bookings.
	DeleteAccount(
		ctx context.Context,
		accountID uint,
	) error
}
