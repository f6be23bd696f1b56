package handlers

import (
	"errors"

	"github.com/ancorzize0250/lokknowback/services"
	"github.com/gofiber/fiber/v2"
)

type TestHandler struct {
	tests *services.TestService
}

func NewTestHandler(tests *services.TestService) *TestHandler {
	return &TestHandler{tests: tests}
}

func (h *TestHandler) GetQuestions(c *fiber.Ctx) error {
	block, err := h.tests.GetNextBlock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Ocurrió un error al obtener las preguntas.",
			"message": err.Error(),
		})
	}
	return c.JSON(block)
}

func (h *TestHandler) PostAnswers(c *fiber.Ctx) error {
	var req services.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.tests.SubmitAnswers(req); err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Ocurrió un error al guardar las respuestas.",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Respuestas guardadas con éxito."})
}

func (h *TestHandler) RegisterQuestions(c *fiber.Ctx) error {
	var items []services.QuestionInput
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	count, err := h.tests.RegisterQuestions(items)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ve.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Ocurrió un error al registrar las preguntas.",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Preguntas registradas masivamente con éxito.",
		"questions_count": count,
	})
}
