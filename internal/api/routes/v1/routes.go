package v1

import (
	"support-assistant-backend/internal/assistant"
	"support-assistant-backend/internal/auth"
	"support-assistant-backend/internal/config"
	"support-assistant-backend/internal/handlers"
	llmHandlers "support-assistant-backend/internal/llm_handlers"
	"support-assistant-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers. Everything is
// constructed once here and injected; no package-global state.
func RegisterRoutes(r fiber.Router, db *gorm.DB, cfg *config.Config, llm llmHandlers.Client) {
	users := repo.NewUserRepository(db)
	tickets := repo.NewTicketRepository(db)
	messages := repo.NewMessageRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := auth.NewService(users, tokens)
	generator := assistant.NewGenerator(tickets, messages, llm)

	guard := auth.RequireAuth(tokens, users)

	registerAuth(r, handlers.NewAuthHandler(authService))
	registerTickets(r, guard,
		handlers.NewTicketHandler(tickets, messages),
		handlers.NewStreamHandler(tickets, generator),
	)
}
