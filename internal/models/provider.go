package models

import (
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
)

// Provider is the hotel or vendor profile of a provider account.
type Provider struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"uniqueIndex;not null" json:"account_id"`
	Kind      role.Role `gorm:"size:20;not null;index" json:"kind"`

	Name         string `gorm:"size:100;not null" json:"name"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`

	// vendors only
	ServiceCategory string `gorm:"size:50" json:"service_category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
