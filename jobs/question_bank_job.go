package jobs

import (
	"log"

	"github.com/ancorzize0250/lokknowback/services"
)

// QuestionBankMonitor warns when the unanswered pool can no longer fill a
// whole block, so new questions can be ingested before clients see short
// blocks.
type QuestionBankMonitor struct {
	questions services.QuestionRepository
}

func NewQuestionBankMonitor(questions services.QuestionRepository) *QuestionBankMonitor {
	return &QuestionBankMonitor{questions: questions}
}

func (m *QuestionBankMonitor) Run() {
	log.Println("Running job: QuestionBankMonitor...")

	count, err := m.questions.CountUnanswered()
	if err != nil {
		log.Printf("Error counting unanswered questions: %v", err)
		return
	}

	if count < services.QuestionsPerBlock {
		log.Printf("Question bank running low: %d unanswered question(s) left.", count)
		return
	}
	log.Printf("%d unanswered question(s) available.", count)
}
