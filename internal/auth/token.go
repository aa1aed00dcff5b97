package auth

import (
	"fmt"
	"time"

	"support-assistant-backend/internal/apperrors"
	"support-assistant-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the signed bearer tokens that carry
// identity between requests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// Claims is the JWT payload: subject holds the user id, Role the user's
// role at issue time.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a time-limited HS256 token for the user.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature and expiry together. Every failure mode
// (malformed, tampered, expired, wrong algorithm) collapses into the same
// unauthorized error so callers cannot tell which check failed.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
