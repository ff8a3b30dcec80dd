package impl

import (
	"context"
	"testing"
	"time"

	"platter/internal/domain/cart"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/service"
	mockRepo "platter/internal/mocks/repository"
	mockService "platter/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service  *sessionService
	tokenSvc *mockService.MockTokenService
	cartRepo *mockRepo.MockCartRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	tokenSvc := mockService.NewMockTokenService(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	srv := NewSessionService(SessionServiceParams{
		TokenSvc: tokenSvc,
		CartRepo: cartRepo,
		Logger:   discardLogger(),
	})

	return sessionServiceFixtures{
		service:  srv.(*sessionService),
		tokenSvc: tokenSvc,
		cartRepo: cartRepo,
	}
}

func TestSessionService_StartSession_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	var issued uuid.UUID
	fx.tokenSvc.EXPECT().
		IssueSessionToken(mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(id uuid.UUID) (string, time.Time, error) {
			issued = id

			return "signed-token", expiresAt, nil
		})
	fx.cartRepo.EXPECT().
		GetOrCreate(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(cart.NewStore())

	token, err := fx.service.StartSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token.Token)
	assert.Equal(t, issued, token.SessionID)
	assert.Equal(t, expiresAt, token.ExpiresAt)
}

func TestSessionService_StartSession_IssueError(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokenSvc.EXPECT().
		IssueSessionToken(mock.AnythingOfType("uuid.UUID")).
		Return("", time.Time{}, errors.New("sign failed"))

	token, err := fx.service.StartSession(context.Background())
	assert.Nil(t, token)
	assert.ErrorContains(t, err, "failed to issue session token")
}

func TestSessionService_ValidateSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateSessionToken("good").
		Return(&service.SessionClaims{SessionID: sessionID}, nil)
	fx.tokenSvc.EXPECT().
		ValidateSessionToken("bad").
		Return(nil, errors.New("token is expired"))

	got, err := fx.service.ValidateSession(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)

	got, err = fx.service.ValidateSession(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Equal(t, uuid.Nil, got)
}
