package v1

import (
	"support-assistant-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerTickets(r fiber.Router, guard fiber.Handler, th *handlers.TicketHandler, sh *handlers.StreamHandler) {
	grp := r.Group("/tickets", guard)
	grp.Post("/", th.CreateTicket)
	grp.Get("/", th.ListTickets)
	grp.Get("/:ticketId", th.GetTicket)
	grp.Post("/:ticketId/messages", th.AddMessage)
	grp.Get("/:ticketId/ai-response", sh.StreamAIResponse)
}
