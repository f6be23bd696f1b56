package handlers

import (
	"errors"

	"github.com/ancorzize0250/lokknowback/services"
	"github.com/gofiber/fiber/v2"
)

type BusinessHandler struct {
	businesses *services.BusinessService
}

func NewBusinessHandler(businesses *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businesses: businesses}
}

func (h *BusinessHandler) EditBusiness(c *fiber.Ctx) error {
	var req services.EditBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	business, err := h.businesses.EditBusiness(req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation error",
				"errors":  ve.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Ha ocurrido un error durante la edición de la información",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Información del negocio registrada correctamente",
		"business": business,
	})
}
