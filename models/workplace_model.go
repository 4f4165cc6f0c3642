package models

import (
	"time"

	"github.com/google/uuid"
)

type Workplace struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name   string    `gorm:"size:255;not null;index" json:"name"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`

	Quizzes []Quiz `gorm:"foreignkey:WorkplaceID;constraint:OnDelete:CASCADE" json:"quizzes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
