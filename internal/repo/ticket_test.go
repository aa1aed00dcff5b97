package repo

import (
	"testing"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketRepoCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "a@x.com")
	tickets := NewTicketRepository(db)

	ticket := &models.Ticket{Title: "Printer broken", Description: "Won't power on", UserID: owner.ID}
	require.NoError(t, tickets.Create(ticket))

	assert.NotEqual(t, uuid.Nil, ticket.ID)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.False(t, ticket.CreatedAt.IsZero())
}

func TestTicketRepoListByOwnerIsScopedAndStable(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")
	tickets := NewTicketRepository(db)

	first := createTestTicket(t, db, alice, "first")
	second := createTestTicket(t, db, alice, "second")
	createTestTicket(t, db, bob, "bobs")

	listed, err := tickets.ListByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// repeated calls return the same order
	again, err := tickets.ListByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, listed[0].ID, again[0].ID)
	assert.Equal(t, listed[1].ID, again[1].ID)

	ids := []uuid.UUID{listed[0].ID, listed[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestTicketRepoGetOwned(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	tickets := NewTicketRepository(db)

	ticket := createTestTicket(t, db, alice, "mine")

	found, err := tickets.GetOwned(ticket.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)
}

func TestTicketRepoGetOwnedHidesForeignTickets(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")
	tickets := NewTicketRepository(db)

	ticket := createTestTicket(t, db, alice, "alices")

	// another owner gets exactly the same error as a missing ticket
	_, foreignErr := tickets.GetOwned(ticket.ID, bob.ID)
	_, missingErr := tickets.GetOwned(uuid.New(), bob.ID)

	assert.ErrorIs(t, foreignErr, apperrors.ErrTicketNotFound)
	assert.ErrorIs(t, missingErr, apperrors.ErrTicketNotFound)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())
}

func TestTicketRepoGetByID(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	tickets := NewTicketRepository(db)

	ticket := createTestTicket(t, db, alice, "mine")

	found, err := tickets.GetByID(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)

	_, err = tickets.GetByID(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}
