package routes

import (
	"github.com/ancorzize0250/lokknowback/handlers"
	"github.com/gofiber/fiber/v2"
)

func TestRoutes(app *fiber.App, h *handlers.TestHandler) {
	app.Get("/test", h.GetQuestions)
	app.Post("/test", h.PostAnswers)
	app.Post("/register_question", h.RegisterQuestions)
}
