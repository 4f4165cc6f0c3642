package models

import "github.com/google/uuid"

type QuestionBlock struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID     uuid.UUID `gorm:"not null;index" json:"quiz_id"`
	SourceFile string    `gorm:"size:255;not null" json:"source_file"`
	StartIndex int       `gorm:"not null" json:"start_index"`
	EndIndex   int       `gorm:"not null" json:"end_index"`

	// QuestionIDs is a JSON array of member question IDs in block order.
	QuestionIDs string `gorm:"type:jsonb;not null" json:"question_ids"`
}
