package booking

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Provider --------
	GetProviderByAccount(
		ctx context.Context,
		accountID uint,
	) (*models.Provider, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForGuest(
		ctx context.Context,
		guestID uint,
	) ([]models.Booking, error)

	ListBookingsForProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Booking, error)
}
