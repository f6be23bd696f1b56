package repositories

import (
	"github.com/ancorzize0250/lokknowback/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// CreateBatch writes every question with its options and correct answer in a
// single transaction; a failure on any row rolls back the whole batch.
func (r *QuestionRepository) CreateBatch(questions []*models.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, question := range questions {
			if err := tx.Create(question).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuestionRepository) RandomUnanswered(limit int) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Preload("Options").
		Preload("CorrectAnswer").
		Where("answered = ?", false).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	var found []uint
	err := r.db.Model(&models.Question{}).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *QuestionRepository) CorrectOptions(ids []uint) (map[uint]string, error) {
	options := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return options, nil
	}
	var rows []models.CorrectAnswer
	err := r.db.Where("question_id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		options[row.QuestionID] = row.CorrectOption
	}
	return options, nil
}

// RecordAnswers persists the graded rows and marks each referenced question
// answered; everything rolls back together on failure.
func (r *QuestionRepository) RecordAnswers(answers []*models.UserAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, answer := range answers {
			if err := tx.Omit(clause.Associations).Create(answer).Error; err != nil {
				return err
			}
			err := tx.Model(&models.Question{}).
				Where("id = ?", answer.QuestionID).
				Update("answered", true).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuestionRepository) CountUnanswered() (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Where("answered = ?", false).Count(&count).Error
	return count, err
}
