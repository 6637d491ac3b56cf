package dto

import (
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type SessionDTO struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   *models.Account `json:"account"`
}
