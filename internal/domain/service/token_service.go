package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the claims carried by a guest cart session token.
type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// IssueSessionToken signs a token for the given cart session.
	IssueSessionToken(sessionID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateSessionToken parses a token and returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
