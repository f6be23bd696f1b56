package routes

import (
	"github.com/ancorzize0250/lokknowback/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	app.Post("/register/client", h.RegisterClient)
	app.Post("/register/business", h.RegisterBusiness)
	app.Post("/login", h.Login)
}
