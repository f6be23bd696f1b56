package routes

import (
	"github.com/ancorzize0250/lokknowback/handlers"
	"github.com/gofiber/fiber/v2"
)

func BusinessRoutes(app *fiber.App, h *handlers.BusinessHandler) {
	app.Post("/information/business", h.EditBusiness)
}
