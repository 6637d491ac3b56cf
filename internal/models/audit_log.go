package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActorAccountID *uint  `gorm:"index" json:"actor_account_id"`
	Action         string `gorm:"size:50;not null" json:"action"`

	Entity   string         `gorm:"size:50" json:"entity"`
	EntityID *uint          `json:"entity_id"`
	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
