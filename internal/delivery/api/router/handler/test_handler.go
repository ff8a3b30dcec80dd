package handler

import (
	"net/http"

	"platter/internal/delivery/api/middleware"
	"platter/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestSessionMiddleware echoes the session resolved by the session middleware
func (h *TestHandler) TestSessionMiddleware(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":    "Session middleware test successful",
		"session_id": sessionID,
	})
}

// TestPublicEndpoint tests a public endpoint (no session required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
