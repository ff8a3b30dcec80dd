// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "platter/internal/delivery/context"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenSvc service.TokenService
	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenSvc service.TokenService
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenSvc: params.TokenSvc,
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession issues a token for a new session and creates its empty cart.
func (srv *sessionService) StartSession(ctx context.Context) (*usecase.SessionToken, error) {
	sessionID := uuid.New()

	token, expiresAt, err := srv.tokenSvc.IssueSessionToken(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.cartRepo.GetOrCreate(ctx, sessionID)
	srv.log(ctx).Debug("Cart session started", slog.String("session_id", sessionID.String()))

	return &usecase.SessionToken{
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateSession returns the session ID carried by token.
func (srv *sessionService) ValidateSession(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := srv.tokenSvc.ValidateSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return uuid.Nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	return claims.SessionID, nil
}
