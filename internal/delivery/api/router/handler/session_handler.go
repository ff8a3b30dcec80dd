package handler

import (
	"net/http"

	"platter/internal/delivery/api/response"
	"platter/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler issues guest cart sessions
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(sessionUC usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// StartSession creates a new cart session and returns its token
func (h *SessionHandler) StartSession(c echo.Context) error {
	token, err := h.sessionUC.StartSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}
