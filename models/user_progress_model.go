package models

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null;index" json:"user_id"`
	QuestionID uuid.UUID `gorm:"not null;index" json:"question_id"`

	SelectedAnswer *string `gorm:"size:1" json:"selected_answer"`
	IsCorrect      *bool   `json:"is_correct"`

	IsFlaggedDisagreeKey bool    `gorm:"default:false" json:"is_flagged_disagree_key"`
	IsFlaggedDisagreeAI  bool    `gorm:"default:false" json:"is_flagged_disagree_ai"`
	AIAnalysis           *string `gorm:"type:text" json:"ai_analysis"`

	Question Question `gorm:"foreignkey:QuestionID" json:"-"`

	UpdatedAt time.Time `json:"updated_at"`
}
