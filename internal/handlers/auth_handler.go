package handlers

import (
	"errors"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type credentialsDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup registers an account and immediately issues a bearer token.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var dto credentialsDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	if _, err := h.service.Register(dto.Email, dto.Password); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		log.Error().Err(err).Msg("signup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register",
		})
	}

	token, err := h.service.Login(dto.Email, dto.Password)
	if err != nil {
		log.Error().Err(err).Msg("post-signup login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var dto credentialsDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	token, err := h.service.Login(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		log.Error().Err(err).Msg("login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log in",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
