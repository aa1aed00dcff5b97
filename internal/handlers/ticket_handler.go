package handlers

import (
	"errors"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/auth"
	"support-assistant-backend/internal/models"
	"support-assistant-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type TicketHandler struct {
	tickets  repo.TicketRepoInterface
	messages repo.MessageRepoInterface
}

func NewTicketHandler(tickets repo.TicketRepoInterface, messages repo.MessageRepoInterface) *TicketHandler {
	return &TicketHandler{tickets: tickets, messages: messages}
}

func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	var dto struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and description are required",
		})
	}

	user := auth.CurrentUser(c)
	ticket := &models.Ticket{
		Title:       dto.Title,
		Description: dto.Description,
		UserID:      user.ID,
	}
	if err := h.tickets.Create(ticket); err != nil {
		log.Error().Err(err).Msg("failed to create ticket")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create ticket",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}

func (h *TicketHandler) ListTickets(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	tickets, err := h.tickets.ListByOwner(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tickets")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get tickets",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tickets": tickets,
	})
}

func (h *TicketHandler) GetTicket(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticketId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid ticket ID",
		})
	}

	user := auth.CurrentUser(c)
	ticket, err := h.tickets.GetOwned(ticketID, user.ID)
	if err != nil {
		return ticketError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

func (h *TicketHandler) AddMessage(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticketId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid ticket ID",
		})
	}

	var dto struct {
		Content string `json:"content" validate:"required"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content is required",
		})
	}

	// Ownership first; the append itself does not re-check it.
	user := auth.CurrentUser(c)
	if _, err := h.tickets.GetOwned(ticketID, user.ID); err != nil {
		return ticketError(c, err)
	}

	message, err := h.messages.Append(ticketID, dto.Content, false)
	if err != nil {
		return ticketError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// ticketError maps a ticket-scoped failure to a response. Not-found and
// not-owned produce an identical body.
func ticketError(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrTicketNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Ticket not found",
		})
	}
	log.Error().Err(err).Msg("ticket operation failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
