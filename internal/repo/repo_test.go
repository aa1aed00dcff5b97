package repo

import (
	"testing"

	"support-assistant-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ticket{}, &models.Message{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	users := NewUserRepository(db)
	user := &models.User{Email: email, PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, users.Create(user))
	return user
}

func createTestTicket(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.Ticket {
	t.Helper()
	tickets := NewTicketRepository(db)
	ticket := &models.Ticket{Title: title, Description: "desc", UserID: owner.ID}
	require.NoError(t, tickets.Create(ticket))
	return ticket
}
