package repo

import (
	"errors"
	"time"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketRepo struct {
	db *gorm.DB
}

type TicketRepoInterface interface {
	Create(ticket *models.Ticket) error
	ListByOwner(ownerID uuid.UUID) ([]models.Ticket, error)
	GetOwned(id, ownerID uuid.UUID) (*models.Ticket, error)
	GetByID(id uuid.UUID) (*models.Ticket, error)
}

func NewTicketRepository(db *gorm.DB) TicketRepoInterface {
	return &TicketRepo{db: db}
}

// Create inserts a new ticket, assigning id, default status and
// timestamp.
func (r *TicketRepo) Create(ticket *models.Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.Status == "" {
		ticket.Status = models.TicketStatusOpen
	}
	ticket.CreatedAt = time.Now()
	return r.db.Create(ticket).Error
}

// ListByOwner returns the caller's tickets, oldest first. The ordering is
// stable across calls absent mutation.
func (r *TicketRepo) ListByOwner(ownerID uuid.UUID) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Where("user_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&tickets).Error
	return tickets, err
}

// GetOwned is the single authorization-aware accessor used by every
// ticket-scoped operation. A ticket that does not exist and a ticket
// owned by someone else produce the same not-found error.
func (r *TicketRepo) GetOwned(id, ownerID uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByID looks a ticket up without an ownership check. Internal use
// only; callers must have authorized the access upstream.
func (r *TicketRepo) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Where("id = ?", id).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
