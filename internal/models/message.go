package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a ticket's conversation. Messages are
// append-only; there is no update or delete path anywhere.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	IsAI      bool      `gorm:"not null;default:false" json:"is_ai"`
	CreatedAt time.Time `json:"created_at"`
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index" json:"ticket_id"`
}
