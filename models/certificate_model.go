package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"not null;index" json:"user_id"`
	QuizID         uuid.UUID `gorm:"not null" json:"quiz_id"`
	BlockID        uuid.UUID `gorm:"not null" json:"block_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	ScorePercent   float64   `gorm:"not null" json:"score_percent"`
	CompletionDate time.Time `gorm:"not null" json:"completion_date"`
	CertificateURL string    `gorm:"type:text;not null" json:"certificate_url"`

	User User `gorm:"foreignkey:UserID" json:"-"`
}
