package handlers

import (
	"errors"

	"github.com/ancorzize0250/lokknowback/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	clients    *services.ClientService
	businesses *services.BusinessService
	auth       *services.AuthService
}

func NewAuthHandler(clients *services.ClientService, businesses *services.BusinessService, auth *services.AuthService) *AuthHandler {
	return &AuthHandler{clients: clients, businesses: businesses, auth: auth}
}

type LoginRequest struct {
	UserType string `json:"userType"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterClient(c *fiber.Ctx) error {
	var req services.RegisterClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	client, err := h.clients.RegisterClient(req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation error",
				"errors":  ve.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred during client registration",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Client registered successfully",
		"client":  client,
	})
}

func (h *AuthHandler) RegisterBusiness(c *fiber.Ctx) error {
	var req services.RegisterBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	business, err := h.businesses.RegisterBusiness(req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation error",
				"errors":  ve.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred during business registration",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Business registered successfully",
		"business": business,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	user, err := h.auth.Login(req.UserType, req.Email, req.Password)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation error",
				"errors":  ve.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred during login",
			"error":   err.Error(),
		})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}
