package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"support-assistant-backend/internal/assistant"
	"support-assistant-backend/internal/auth"
	"support-assistant-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

type StreamHandler struct {
	tickets   repo.TicketRepoInterface
	generator *assistant.Generator
}

func NewStreamHandler(tickets repo.TicketRepoInterface, generator *assistant.Generator) *StreamHandler {
	return &StreamHandler{tickets: tickets, generator: generator}
}

// StreamAIResponse streams a generated reply as server-sent events, one
// `data` event per chunk. Ownership is verified before the stream opens;
// a non-owner gets the same 404 as a missing ticket. When the client
// disconnects mid-stream the generator context is cancelled and the
// partial reply is discarded.
func (h *StreamHandler) StreamAIResponse(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticketId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid ticket ID",
		})
	}

	user := auth.CurrentUser(c)
	if _, err := h.tickets.GetOwned(ticketID, user.ID); err != nil {
		return ticketError(c, err)
	}

	// The generator owns its lifetime through this context; the stream
	// writer cancels it when the client goes away.
	ctx, cancel := context.WithCancel(context.Background())

	chunks, err := h.generator.Generate(ctx, ticketID)
	if err != nil {
		cancel()
		return ticketError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		for chunk := range chunks {
			if chunk.Err != nil {
				// Terminal error event so the client can tell a provider
				// failure from a finished stream.
				writeEvent(w, "error", fiber.Map{
					"error":     "AI response generation failed",
					"retryable": true,
				})
				w.Flush()
				return
			}

			if err := writeEvent(w, "", fiber.Map{"content": chunk.Content}); err != nil || w.Flush() != nil {
				// Client disconnected: stop generation and drain so the
				// producer goroutine exits.
				log.Debug().Str("ticket_id", ticketID.String()).Msg("stream consumer disconnected")
				cancel()
				for range chunks {
				}
				return
			}
		}

		writeEvent(w, "done", fiber.Map{})
		w.Flush()
	}))

	return nil
}

// writeEvent frames one SSE event. An empty event name emits a plain
// data-only event.
func writeEvent(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if event != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
