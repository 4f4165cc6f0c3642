package models

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"not null;index" json:"user_id"`
	WorkplaceID *uuid.UUID `gorm:"index" json:"workplace_id"`
	Title       string     `gorm:"size:255;not null;index" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Provider    *string    `gorm:"size:100" json:"provider"`
	FileName    *string    `gorm:"size:255" json:"file_name"`

	Questions []Question      `gorm:"foreignkey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Blocks    []QuestionBlock `gorm:"foreignkey:QuizID;constraint:OnDelete:CASCADE" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
