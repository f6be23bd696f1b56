package models

// OptionKey is unique per question; the four keys a-d are created together
// with their question at ingestion time.
type Option struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;uniqueIndex:idx_question_option" json:"question_id"`
	OptionKey  string `gorm:"size:1;not null;uniqueIndex:idx_question_option" json:"option_key"`
	OptionText string `gorm:"type:text;not null" json:"option_text"`
}
