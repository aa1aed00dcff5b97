package auth

import (
	"strings"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/models"
	"support-assistant-backend/internal/repo"
)

// Service implements registration and login over the user repository.
type Service struct {
	users  repo.UserRepoInterface
	tokens *TokenService
}

func NewService(users repo.UserRepoInterface, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// NormalizeEmail lowercases and trims an email so accounts cannot differ
// only by case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a bcrypt-hashed password. Registering
// an email that already has an account fails with ErrEmailTaken.
func (s *Service) Register(email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}
	return s.tokens.Issue(user)
}
