package middleware

import (
	"log/slog"
	"strings"

	"platter/internal/delivery/api/response"
	deliverycontext "platter/internal/delivery/context"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the guest cart session of a request.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC}
}

// RequireSession rejects requests without a valid session token and puts the
// session ID on the context for handlers.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := sessionToken(c)
		if !ok {
			return response.Unauthorized(c, "SESSION_REQUIRED", "A cart session token is required")
		}

		ctx := c.Request().Context()
		sessionID, err := m.sessionUC.ValidateSession(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetSessionID(c, sessionID)

		// Enrich the request logger so service logs carry the session.
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", sessionID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// sessionToken reads a Bearer token, falling back to X-Session-Token.
func sessionToken(c echo.Context) (string, bool) {
	header := c.Request().Header

	if auth := header.Get(echo.HeaderAuthorization); auth != "" {
		token, found := strings.CutPrefix(auth, "Bearer ")
		token = strings.TrimSpace(token)

		return token, found && token != ""
	}

	token := strings.TrimSpace(header.Get(deliverycontext.HeaderXSessionToken))

	return token, token != ""
}

// GetSessionID returns the session ID set by RequireSession.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetSessionID(c)
}
