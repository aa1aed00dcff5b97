package routes

import (
	v1 "support-assistant-backend/internal/api/routes/v1"
	"support-assistant-backend/internal/config"
	llmHandlers "support-assistant-backend/internal/llm_handlers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, llm llmHandlers.Client) {
	// API v1 group
	api := app.Group("/api")
	v1Group := api.Group("/v1")

	// Register v1 routes
	v1.RegisterRoutes(v1Group, db, cfg, llm)
}
