package models

import "github.com/google/uuid"

type Question struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID uuid.UUID `gorm:"not null;index" json:"quiz_id"`
	Number int       `gorm:"not null" json:"number"`
	Text   string    `gorm:"type:text;not null" json:"text"`

	// Options is a JSON array of {letter, text} pairs, marshaled by the
	// upload handler from the parser output.
	Options       string `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"`
	Explanation   string `gorm:"type:text" json:"explanation"`

	IsDivergent       bool    `gorm:"default:false" json:"is_divergent"`
	ExplanationAnswer *string `gorm:"size:1" json:"explanation_answer"`

	SourceFile string `gorm:"size:255" json:"source_file"`
	BlockIndex int    `gorm:"default:0" json:"block_index"`

	// ContentHash identifies identical questions across users so community
	// notes can be shared between independently uploaded copies.
	ContentHash string `gorm:"size:16;index" json:"content_hash"`
}
