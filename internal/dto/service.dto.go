package dto

import (
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type ServiceDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Duration     int       `json:"duration"`
	ProviderID   uint      `json:"provider_id"`
	ProviderType string    `json:"provider_type"`
	ProviderName string    `json:"provider_name"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewServiceDTO(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		Duration:     s.DurationMin,
		ProviderID:   s.ProviderID,
		ProviderType: string(s.ProviderKind),
		ProviderName: s.Provider.Name,
		ImageURL:     s.ImageURL,
		CreatedAt:    s.CreatedAt,
	}
}

func NewServiceList(services []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, NewServiceDTO(s))
	}
	return out
}
