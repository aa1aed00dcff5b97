package assistant

import (
	"fmt"
	"strings"

	"support-assistant-backend/internal/models"
)

const promptTemplate = `You are a helpful customer support assistant.
The customer has the following issue: %s

Previous messages:
%s

Customer's latest message: %s

Provide a helpful response that addresses their concern:`

// BuildPrompt renders the ticket and its ordered history as a transcript.
// The latest message is repeated after the transcript on purpose: it
// anchors the model's attention on what to answer. With no messages yet
// the transcript and latest message are empty strings.
func BuildPrompt(ticket *models.Ticket, history []models.Message) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		role := "User"
		if msg.IsAI {
			role = "AI"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, msg.Content))
	}

	latest := ""
	if len(history) > 0 {
		latest = history[len(history)-1].Content
	}

	return fmt.Sprintf(promptTemplate, ticket.Description, strings.Join(lines, "\n"), latest)
}
