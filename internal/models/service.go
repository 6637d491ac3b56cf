package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID   uint      `gorm:"not null;index" json:"provider_id"`
	Provider     Provider  `gorm:"constraint:OnUpdate:CASCADE;" json:"provider"`
	ProviderKind role.Role `gorm:"size:20;not null;index" json:"provider_type"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	DurationMin int     `gorm:"not null" json:"duration"`
	ImageURL    string  `gorm:"size:512" json:"image_url,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
