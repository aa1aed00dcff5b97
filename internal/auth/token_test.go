package auth

import (
	"strings"
	"testing"
	"time"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{ID: uuid.New(), Email: "a@x.com", Role: models.RoleUser}
}

func TestTokenIssueAndParse(t *testing.T) {
	tokens := NewTokenService("secret", 30*time.Minute)
	user := testUser()

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestTokenExpiredRejected(t *testing.T) {
	tokens := NewTokenService("secret", -time.Minute)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenTamperedRejected(t *testing.T) {
	tokens := NewTokenService("secret", 30*time.Minute)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	// extend the signature segment so it no longer verifies
	tampered := token + "AAAA"
	_, err = tokens.Parse(tampered)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-a", 30*time.Minute)
	verifier := NewTokenService("secret-b", 30*time.Minute)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenMalformedRejected(t *testing.T) {
	tokens := NewTokenService("secret", 30*time.Minute)

	for _, bad := range []string{"", "not-a-token", strings.Repeat("a.", 3)} {
		_, err := tokens.Parse(bad)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	}
}
