package assistant

import (
	"context"
	"fmt"
	"strings"

	"support-assistant-backend/internal/apperrors"
	llmHandlers "support-assistant-backend/internal/llm_handlers"
	"support-assistant-backend/internal/repo"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Chunk is one fragment of a generated reply. A Chunk with Err set is
// terminal: no further chunks follow and nothing was persisted.
type Chunk struct {
	Content string
	Err     error
}

// chunkBuffer bounds the producer/consumer channel so a slow consumer
// applies backpressure instead of the producer buffering the whole reply.
const chunkBuffer = 16

// Generator turns a ticket's context into a streamed reply and persists
// the complete text exactly once, after the last chunk.
type Generator struct {
	tickets  repo.TicketRepoInterface
	messages repo.MessageRepoInterface
	llm      llmHandlers.Client
}

func NewGenerator(tickets repo.TicketRepoInterface, messages repo.MessageRepoInterface, llm llmHandlers.Client) *Generator {
	return &Generator{tickets: tickets, messages: messages, llm: llm}
}

// Generate streams one completion for the ticket. It fails with
// ErrTicketNotFound before any chunk is produced when the ticket is
// absent. The returned channel is single-pass and closed after the final
// event; calling Generate again starts an independent generation over the
// then-current history.
//
// Persistence policy: the accumulated text becomes one AI message only
// when the provider completes naturally and produced any text. A
// mid-stream provider error or a cancelled context discards the partial
// accumulation — truncated replies are never persisted.
func (g *Generator) Generate(ctx context.Context, ticketID uuid.UUID) (<-chan Chunk, error) {
	ticket, err := g.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}

	history, err := g.messages.History(ticketID)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(ticket, history)

	out := make(chan Chunk, chunkBuffer)
	go func() {
		defer close(out)

		var full strings.Builder
		err := g.llm.ChatStream(ctx, prompt, func(ctx context.Context, chunk string) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			select {
			case out <- Chunk{Content: chunk}:
			case <-ctx.Done():
				return ctx.Err()
			}
			full.WriteString(chunk)
			return nil
		})

		if ctx.Err() != nil {
			// Consumer went away; the partial reply is dropped.
			log.Debug().Str("ticket_id", ticketID.String()).Msg("generation cancelled, discarding partial reply")
			return
		}
		if err != nil {
			log.Warn().Err(err).Str("ticket_id", ticketID.String()).Msg("completion provider failed mid-stream")
			select {
			case out <- Chunk{Err: fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)}:
			case <-ctx.Done():
			}
			return
		}

		// Empty completion: nothing to persist.
		if full.Len() == 0 {
			return
		}

		if _, err := g.messages.Append(ticketID, full.String(), true); err != nil {
			log.Error().Err(err).Str("ticket_id", ticketID.String()).Msg("failed to persist AI message")
			select {
			case out <- Chunk{Err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}
