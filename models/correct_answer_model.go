package models

type CorrectAnswer struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	QuestionID    uint   `gorm:"not null;uniqueIndex" json:"question_id"`
	CorrectOption string `gorm:"size:1;not null" json:"correct_option"`
}
