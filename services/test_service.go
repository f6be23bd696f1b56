package services

import (
	"fmt"

	"github.com/ancorzize0250/lokknowback/models"
)

// QuestionsPerBlock is the fixed size of a served question block.
const QuestionsPerBlock = 10

var optionKeys = []string{"a", "b", "c", "d"}

type TestService struct {
	questions QuestionRepository
}

func NewTestService(questions QuestionRepository) *TestService {
	return &TestService{questions: questions}
}

// The test module keeps the Spanish wire contract of the original API.
type TestQuestion struct {
	Numero            uint              `json:"numero"`
	Pregunta          string            `json:"pregunta"`
	Opciones          map[string]string `json:"opciones"`
	RespuestaCorrecta *string           `json:"respuesta_correcta"`
}

type TestBlock struct {
	PreguntaInicial *uint          `json:"pregunta_inicial"`
	PreguntaFinal   *uint          `json:"pregunta_final"`
	Test            []TestQuestion `json:"test"`
}

// GetNextBlock serves up to QuestionsPerBlock unanswered questions in random
// order. Read-only: repeated calls may overlap until answers are submitted.
func (s *TestService) GetNextBlock() (*TestBlock, error) {
	questions, err := s.questions.RandomUnanswered(QuestionsPerBlock)
	if err != nil {
		return nil, err
	}

	block := &TestBlock{Test: make([]TestQuestion, 0, len(questions))}
	for _, q := range questions {
		opciones := make(map[string]string, len(q.Options))
		for _, o := range q.Options {
			opciones[o.OptionKey] = o.OptionText
		}
		var correcta *string
		if q.CorrectAnswer != nil {
			c := q.CorrectAnswer.CorrectOption
			correcta = &c
		}
		block.Test = append(block.Test, TestQuestion{
			Numero:            q.ID,
			Pregunta:          q.Question,
			Opciones:          opciones,
			RespuestaCorrecta: correcta,
		})
	}

	if len(questions) > 0 {
		first := questions[0].ID
		last := questions[len(questions)-1].ID
		block.PreguntaInicial = &first
		block.PreguntaFinal = &last
	}
	return block, nil
}

type AnswerSubmission struct {
	IDPregunta       *uint  `json:"id_pregunta" validate:"required"`
	RespuestaUsuario string `json:"respuesta_usuario" validate:"required,oneof=a b c d"`
}

type SubmitAnswersRequest struct {
	PreguntaInicial *int               `json:"pregunta_inicial" validate:"required"`
	PreguntaFinal   *int               `json:"pregunta_final" validate:"required"`
	Respuestas      []AnswerSubmission `json:"respuestas" validate:"required,min=1"`
}

// SubmitAnswers grades each answer against the stored correct option,
// persists one UserAnswer row per submission and marks the questions
// answered, all inside one transaction. Validation runs in full before any
// write.
func (s *TestService) SubmitAnswers(req SubmitAnswersRequest) error {
	ve := newValidationError()
	collectStruct(ve, req, "")
	for i, r := range req.Respuestas {
		collectStruct(ve, r, fmt.Sprintf("respuestas.%d.", i))
	}

	ids := make([]uint, 0, len(req.Respuestas))
	for _, r := range req.Respuestas {
		if r.IDPregunta != nil {
			ids = append(ids, *r.IDPregunta)
		}
	}
	if len(ids) > 0 {
		existing, err := s.questions.ExistingIDs(ids)
		if err != nil {
			return err
		}
		for i, r := range req.Respuestas {
			if r.IDPregunta != nil && !existing[*r.IDPregunta] {
				name := fmt.Sprintf("respuestas.%d.id_pregunta", i)
				ve.add(name, fmt.Sprintf("The selected %s is invalid.", name))
			}
		}
	}
	if err := ve.orNil(); err != nil {
		return err
	}

	correctByQuestion, err := s.questions.CorrectOptions(ids)
	if err != nil {
		return err
	}

	answers := make([]*models.UserAnswer, 0, len(req.Respuestas))
	for _, r := range req.Respuestas {
		// A question without a stored correct answer grades false.
		correct := correctByQuestion[*r.IDPregunta] == r.RespuestaUsuario
		answers = append(answers, &models.UserAnswer{
			QuestionID:      *r.IDPregunta,
			SubmittedOption: r.RespuestaUsuario,
			Correct:         &correct,
		})
	}

	return s.questions.RecordAnswers(answers)
}

type QuestionInput struct {
	Pregunta          string            `json:"pregunta" validate:"required"`
	Opciones          map[string]string `json:"opciones" validate:"required,len=4"`
	RespuestaCorrecta string            `json:"respuesta_correcta" validate:"required,oneof=a b c d"`
}

// RegisterQuestions validates the whole batch before writing any of it, then
// creates each question with its four options and correct answer in one
// transaction. Returns the number of questions created.
func (s *TestService) RegisterQuestions(items []QuestionInput) (int, error) {
	ve := newValidationError()
	for i, item := range items {
		prefix := fmt.Sprintf("%d.", i)
		collectStruct(ve, item, prefix)
		if item.Opciones == nil {
			continue
		}
		for _, key := range optionKeys {
			if text, ok := item.Opciones[key]; !ok || text == "" {
				name := prefix + "opciones." + key
				ve.add(name, fmt.Sprintf("The %s field is required.", name))
			}
		}
	}
	if err := ve.orNil(); err != nil {
		return 0, err
	}

	questions := make([]*models.Question, 0, len(items))
	for _, item := range items {
		question := &models.Question{Question: item.Pregunta}
		for _, key := range optionKeys {
			question.Options = append(question.Options, models.Option{
				OptionKey:  key,
				OptionText: item.Opciones[key],
			})
		}
		question.CorrectAnswer = &models.CorrectAnswer{CorrectOption: item.RespuestaCorrecta}
		questions = append(questions, question)
	}

	if err := s.questions.CreateBatch(questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}
