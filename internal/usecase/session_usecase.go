// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionToken is a freshly issued guest cart session.
type SessionToken struct {
	Token     string    `json:"token"`
	SessionID uuid.UUID `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionUsecase issues and checks guest cart sessions. It identifies a
// cart, not a person.
type SessionUsecase interface {
	// StartSession creates a new session with an empty cart.
	StartSession(ctx context.Context) (*SessionToken, error)

	// ValidateSession returns the session ID carried by token.
	ValidateSession(ctx context.Context, token string) (uuid.UUID, error)
}
