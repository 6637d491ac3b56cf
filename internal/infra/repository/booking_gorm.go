package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hotel-services/internal/domain/booking"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// withService loads the booked service even after it was soft-deleted.
func withService(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Service", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Service.Provider")
}

// --------------------------------------------------
// Service / Provider
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&s, serviceID).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *BookingGormRepository) GetProviderByAccount(
	ctx context.Context,
	accountID uint,
) (*models.Provider, error) {
	return findProvider(r.db.WithContext(ctx).Where("account_id = ?", accountID))
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("Guest", "Service").Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := withService(r.db.WithContext(ctx)).
		First(&b, bookingID).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("Status", "ConfirmedAt", "CancelledAt", "CompletedAt").
		Updates(b).Error
}

func (r *BookingGormRepository) ListBookingsForGuest(
	ctx context.Context,
	guestID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := withService(r.db.WithContext(ctx)).
		Where("guest_id = ?", guestID).
		Order("booking_date ASC, booking_time ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := withService(r.db.WithContext(ctx)).
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.provider_id = ?", providerID).
		Order("bookings.booking_date ASC, bookings.booking_time ASC, bookings.id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ domain.Repository = (*BookingGormRepository)(nil)
