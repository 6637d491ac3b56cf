package models

import (
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
)

type Account struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Role         role.Role `gorm:"size:20;not null;default:'guest'" json:"role"`

	Provider *Provider `gorm:"foreignKey:AccountID" json:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
