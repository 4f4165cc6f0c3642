package models

import (
	"time"

	"github.com/google/uuid"
)

type StudyGroup struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	CreatorID uuid.UUID `gorm:"not null" json:"creator_id"`
	// Members is a JSON array of usernames.
	Members string `gorm:"type:jsonb;not null" json:"members"`

	Creator User `gorm:"foreignkey:CreatorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
