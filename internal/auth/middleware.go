package auth

import (
	"strings"

	"support-assistant-backend/internal/models"
	"support-assistant-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userContextKey is where RequireAuth stores the resolved user in the
// request locals.
const userContextKey = "current_user"

// RequireAuth resolves the bearer token on every protected request and
// loads the account it names. Missing, malformed, expired and
// signature-invalid tokens are all rejected with the same 401 response.
// The client-supplied identity is never trusted directly.
func RequireAuth(tokens *TokenService, users repo.UserRepoInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c)
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return unauthorized(c)
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return unauthorized(c)
		}

		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			return unauthorized(c)
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil
// on unguarded routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userContextKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid or expired token",
	})
}
