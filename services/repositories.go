package services

import "github.com/ancorzize0250/lokknowback/models"

// The store interfaces are declared next to their consumers; the gorm
// implementations live in the repositories package. Find methods return
// (nil, nil) when nothing matches.

type ClientRepository interface {
	Create(client *models.Client) error
	FindByEmail(email string) (*models.Client, error)
	ExistsByIdentification(identification string) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

type BusinessRepository interface {
	Create(business *models.Business) error
	FindByEmail(email string) (*models.Business, error)
	FindByID(id uint) (*models.Business, error)
	Update(business *models.Business) error
	// excludeID ignores one row, for update-time uniqueness; 0 excludes none.
	ExistsByNit(nit string, excludeID uint) (bool, error)
	ExistsByEmail(email string, excludeID uint) (bool, error)
}

type QuestionRepository interface {
	// CreateBatch persists each question with its options and correct answer
	// in one transaction; nothing is written if any row fails.
	CreateBatch(questions []*models.Question) error
	// RandomUnanswered returns up to limit unanswered questions in random
	// order, options and correct answer loaded.
	RandomUnanswered(limit int) ([]models.Question, error)
	ExistingIDs(ids []uint) (map[uint]bool, error)
	CorrectOptions(ids []uint) (map[uint]string, error)
	// RecordAnswers persists the graded rows and marks their questions
	// answered in one transaction.
	RecordAnswers(answers []*models.UserAnswer) error
	CountUnanswered() (int64, error)
}
