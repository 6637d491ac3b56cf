package booking

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/booking"
	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type ListGuestBookings struct {
	repo domain.Repository
}

func NewListGuestBookings(repo domain.Repository) *ListGuestBookings {
	return &ListGuestBookings{repo: repo}
}

// Execute returns the caller's bookings ordered by date, time and id.
func (uc *ListGuestBookings) Execute(
	ctx context.Context,
	sess *auth.Session,
) ([]models.Booking, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}
	if sess.Role != role.Guest {
		return nil, httperr.ErrForbidden("guests_only")
	}
	return uc.repo.ListBookingsForGuest(ctx, sess.AccountID)
}

type ListProviderBookings struct {
	repo domain.Repository
}

func NewListProviderBookings(repo domain.Repository) *ListProviderBookings {
	return &ListProviderBookings{repo: repo}
}

func (uc *ListProviderBookings) Execute(
	ctx context.Context,
	sess *auth.Session,
) ([]models.Booking, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	p, err := uc.repo.GetProviderByAccount(ctx, sess.AccountID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListBookingsForProvider(ctx, p.ID)
}

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	sess *auth.Session,
	bookingID uint,
) (*models.Booking, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(sess, access.ReadBooking, resourceOf(b)).Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func resourceOf(b *models.Booking) access.Resource {
	return access.Resource{
		GuestAccountID: b.GuestID,
		OwnerAccountID: b.Service.Provider.AccountID,
	}
}
