package api

import (
	"errors"

	"support-assistant-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

func NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		AppName:      "Support Assistant Backend",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	return app
}

// customErrorHandler is the backstop for errors that escape a handler.
// Domain errors map to their status codes; storage errors never leak raw.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrEmailTaken):
		code = fiber.StatusConflict
	case errors.Is(err, apperrors.ErrUpstream):
		code = fiber.StatusBadGateway
	}

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().Err(err).Int("status", code).Msg("request failed")

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func StartServer(app *fiber.App, port string) error {
	log.Info().Str("port", port).Msg("server starting")
	return app.Listen(":" + port)
}
