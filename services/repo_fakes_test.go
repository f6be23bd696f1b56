package services_test

import (
	"errors"

	"github.com/ancorzize0250/lokknowback/models"
)

// In-memory repository fakes backing the workflow tests.

type fakeClientRepo struct {
	clients   []*models.Client
	nextID    uint
	findCalls int
}

func (f *fakeClientRepo) Create(client *models.Client) error {
	f.nextID++
	client.ID = f.nextID
	stored := *client
	f.clients = append(f.clients, &stored)
	return nil
}

func (f *fakeClientRepo) FindByEmail(email string) (*models.Client, error) {
	f.findCalls++
	for _, client := range f.clients {
		if client.Email == email {
			found := *client
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) ExistsByIdentification(identification string) (bool, error) {
	for _, client := range f.clients {
		if client.Identification == identification {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) ExistsByEmail(email string) (bool, error) {
	for _, client := range f.clients {
		if client.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeBusinessRepo struct {
	businesses []*models.Business
	nextID     uint
	findCalls  int
}

func (f *fakeBusinessRepo) Create(business *models.Business) error {
	f.nextID++
	business.ID = f.nextID
	stored := *business
	f.businesses = append(f.businesses, &stored)
	return nil
}

func (f *fakeBusinessRepo) FindByEmail(email string) (*models.Business, error) {
	f.findCalls++
	for _, business := range f.businesses {
		if business.Email == email {
			found := *business
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) FindByID(id uint) (*models.Business, error) {
	for _, business := range f.businesses {
		if business.ID == id {
			found := *business
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) Update(business *models.Business) error {
	for i, stored := range f.businesses {
		if stored.ID == business.ID {
			updated := *business
			f.businesses[i] = &updated
			return nil
		}
	}
	return errors.New("business not found")
}

func (f *fakeBusinessRepo) ExistsByNit(nit string, excludeID uint) (bool, error) {
	for _, business := range f.businesses {
		if business.Nit == nit && business.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBusinessRepo) ExistsByEmail(email string, excludeID uint) (bool, error) {
	for _, business := range f.businesses {
		if business.Email == email && business.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeQuestionRepo struct {
	questions  []*models.Question
	answers    []*models.UserAnswer
	nextID     uint
	failRecord bool
}

func (f *fakeQuestionRepo) CreateBatch(questions []*models.Question) error {
	for _, question := range questions {
		f.nextID++
		question.ID = f.nextID
		for i := range question.Options {
			question.Options[i].QuestionID = question.ID
		}
		if question.CorrectAnswer != nil {
			question.CorrectAnswer.QuestionID = question.ID
		}
		stored := *question
		f.questions = append(f.questions, &stored)
	}
	return nil
}

func (f *fakeQuestionRepo) RandomUnanswered(limit int) ([]models.Question, error) {
	var out []models.Question
	for _, question := range f.questions {
		if question.Answered {
			continue
		}
		out = append(out, *question)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) ExistingIDs(ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	for _, id := range ids {
		for _, question := range f.questions {
			if question.ID == id {
				existing[id] = true
			}
		}
	}
	return existing, nil
}

func (f *fakeQuestionRepo) CorrectOptions(ids []uint) (map[uint]string, error) {
	options := make(map[uint]string, len(ids))
	for _, id := range ids {
		for _, question := range f.questions {
			if question.ID == id && question.CorrectAnswer != nil {
				options[id] = question.CorrectAnswer.CorrectOption
			}
		}
	}
	return options, nil
}

func (f *fakeQuestionRepo) RecordAnswers(answers []*models.UserAnswer) error {
	if f.failRecord {
		return errors.New("store unavailable")
	}
	for _, answer := range answers {
		stored := *answer
		f.answers = append(f.answers, &stored)
		for _, question := range f.questions {
			if question.ID == answer.QuestionID {
				question.Answered = true
			}
		}
	}
	return nil
}

func (f *fakeQuestionRepo) CountUnanswered() (int64, error) {
	var count int64
	for _, question := range f.questions {
		if !question.Answered {
			count++
		}
	}
	return count, nil
}
