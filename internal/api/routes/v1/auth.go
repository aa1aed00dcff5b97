package v1

import (
	"support-assistant-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerAuth(r fiber.Router, h *handlers.AuthHandler) {
	grp := r.Group("/auth")
	grp.Post("/signup", h.Signup)
	grp.Post("/login", h.Login)
}
