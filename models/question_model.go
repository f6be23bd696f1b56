package models

import "time"

type Question struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answered bool   `gorm:"not null;default:false" json:"answered"`

	Options       []Option       `gorm:"constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CorrectAnswer *CorrectAnswer `gorm:"constraint:OnDelete:CASCADE" json:"correct_answer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
