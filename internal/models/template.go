package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Template is a reusable message template. Only the owning user can see or
// mutate it; ownership is fixed at creation.
type Template struct {
	ID           uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	TemplateName string     `json:"template_name" gorm:"not null"`
	Subject      string     `json:"subject" gorm:"not null"`
	Body         string     `json:"body" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}
