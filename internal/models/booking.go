package models

import (
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestID uint    `gorm:"not null;index" json:"guest_id"`
	Guest   Account `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE;" json:"service"`

	BookingDate datatypes.Date `gorm:"not null" json:"booking_date"`
	BookingTime string         `gorm:"size:5;not null" json:"booking_time"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
