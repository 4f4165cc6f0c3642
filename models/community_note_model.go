package models

import (
	"time"

	"github.com/google/uuid"
)

type CommunityNote struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	QuestionID *uuid.UUID `gorm:"index" json:"question_id"`
	// QuestionHash lets identical questions uploaded by different users share
	// one note thread.
	QuestionHash string `gorm:"size:16;index" json:"question_hash"`

	UserID   uuid.UUID `gorm:"not null" json:"user_id"`
	UserName string    `gorm:"size:100;not null" json:"user_name"`
	Content  string    `gorm:"type:text;not null" json:"content"`

	Visibility string `gorm:"size:20;not null;default:'public'" json:"visibility"`
	// SharedWith is a JSON array of usernames, only meaningful when
	// Visibility is "group".
	SharedWith *string `gorm:"type:jsonb" json:"shared_with"`

	CreatedAt time.Time `json:"created_at"`
}
