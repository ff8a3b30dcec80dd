package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeySessionID is the key for storing the cart session ID in echo.Context.
	KeySessionID ContextKey = "session_id"

	// HeaderXSessionToken carries the session token for clients that cannot set Authorization.
	HeaderXSessionToken = "X-Session-Token"
)

// SetSessionID stores the authenticated cart session ID in echo.Context.
func SetSessionID(c echo.Context, sessionID uuid.UUID) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionID returns the cart session ID set by the session middleware.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeySessionID)).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
