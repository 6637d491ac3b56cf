package catalog

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type Repository interface {
	// -------- Provider --------
	GetProviderByID(
		ctx context.Context,
		providerID uint,
	) (*models.Provider, error)

	GetProviderByAccount(
		ctx context.Context,
		accountID uint,
	) (*models.Provider, error)

	// -------- Service --------
	ListServices(
		ctx context.Context,
		filter Filter,
	) ([]models.Service, error)

	ListServicesForProvider(
		ctx context.Context,
		providerID uint,
		kind string,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	UpdateService(
		ctx context.Context,
		s *models.Service,
	) error

	DeleteService(
		ctx context.Context,
		serviceID uint,
	) error

	// -------- Booking --------
	CountActiveBookings(
		ctx context.Context,
		serviceID uint,
	) (int64, error)
}
