package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// Ticket is a customer support case. The owner is set at creation and
// never changes.
type Ticket struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Status      string    `gorm:"not null;default:'open'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}
