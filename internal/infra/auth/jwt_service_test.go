package auth

import (
	"testing"
	"time"

	"platter/config"
	"platter/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TokenTTL: ttl}}
	cfg.SecretKey.Session = secret

	return cfg
}

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecretAndTTL(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig(testSecret, 0))
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestService(t)
	sessionID := uuid.New()

	token, expiresAt, err := svc.IssueSessionToken(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "cart_session", claims.Type)
	assert.Equal(t, sessionID.String(), claims.Subject)
}

func TestJWTService_RejectsNilSession(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.IssueSessionToken(uuid.Nil)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService(t)
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.IssueSessionToken(uuid.New())
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)
	other, err := NewJWTService(newTestConfig("another_secret_key_that_is_long_enough", time.Hour))
	require.NoError(t, err)

	token, _, err := other.IssueSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	svc := newTestService(t)
	claims := service.SessionClaims{
		SessionID: uuid.New(),
		Type:      "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	claims, err := svc.ValidateSessionToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
