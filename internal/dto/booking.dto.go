package dto

import (
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/models"
	"github.com/BruksfildServices01/hotel-services/internal/timezone"
)

type BookingDTO struct {
	ID           uint       `json:"id"`
	GuestID      uint       `json:"guest_id"`
	ServiceID    uint       `json:"service_id"`
	ServiceName  string     `json:"service_name"`
	ProviderName string     `json:"provider_name"`
	Date         string     `json:"booking_date"`
	Time         string     `json:"booking_time"`
	Status       string     `json:"status"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewBookingDTO(b models.Booking) BookingDTO {
	return BookingDTO{
		ID:           b.ID,
		GuestID:      b.GuestID,
		ServiceID:    b.ServiceID,
		ServiceName:  b.Service.Name,
		ProviderName: b.Service.Provider.Name,
		Date:         time.Time(b.BookingDate).Format(timezone.DateLayout),
		Time:         b.BookingTime,
		Status:       b.Status,
		ConfirmedAt:  b.ConfirmedAt,
		CancelledAt:  b.CancelledAt,
		CompletedAt:  b.CompletedAt,
		CreatedAt:    b.CreatedAt,
	}
}

func NewBookingList(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingDTO(b))
	}
	return out
}
