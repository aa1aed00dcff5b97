package repo

import (
	"time"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepo struct {
	db *gorm.DB
}

type MessageRepoInterface interface {
	Append(ticketID uuid.UUID, content string, isAI bool) (*models.Message, error)
	History(ticketID uuid.UUID) ([]models.Message, error)
}

func NewMessageRepository(db *gorm.DB) MessageRepoInterface {
	return &MessageRepo{db: db}
}

// Append inserts one message. The ticket-existence check and the insert
// run in one transaction so a message can never reference a missing
// ticket. Ownership is not re-checked here; callers authorize upstream.
func (r *MessageRepo) Append(ticketID uuid.UUID, content string, isAI bool) (*models.Message, error) {
	msg := &models.Message{
		ID:        uuid.New(),
		Content:   content,
		IsAI:      isAI,
		CreatedAt: time.Now(),
		TicketID:  ticketID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Ticket{}).Where("id = ?", ticketID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrTicketNotFound
		}
		return tx.Create(msg).Error
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns the ticket's full message log in creation order. The id
// column breaks ties between equal timestamps.
func (r *MessageRepo) History(ticketID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
