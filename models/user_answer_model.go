package models

import "time"

// UserAnswer keeps every submission; question_id is deliberately not unique,
// repeated submissions for the same question append new rows.
type UserAnswer struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	QuestionID      uint   `gorm:"not null;index" json:"question_id"`
	SubmittedOption string `gorm:"size:1;not null" json:"submitted_option"`
	Correct         *bool  `json:"correct"`

	Question Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
