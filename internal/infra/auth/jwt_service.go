// Package auth issues and validates guest cart session tokens.
package auth

import (
	"time"

	"platter/config"
	"platter/internal/domain/constants"
	"platter/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "platter"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}
	if cfg.Session == nil || cfg.Session.TokenTTL <= 0 {
		return nil, errors.New("session token TTL must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    cfg.Session.TokenTTL,
		now:    time.Now,
	}, nil
}

// IssueSessionToken signs an HS256 token carrying the cart session ID.
func (s *jwtService) IssueSessionToken(sessionID uuid.UUID) (string, time.Time, error) {
	if sessionID == uuid.Nil {
		return "", time.Time{}, errors.New("session ID must not be empty")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := service.SessionClaims{
		SessionID: sessionID,
		Type:      constants.SessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return signed, expiresAt, nil
}

// ValidateSessionToken parses a token and returns its claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}

	if claims.Type != constants.SessionTokenType {
		return nil, errors.Errorf("unexpected token type: %s", claims.Type)
	}
	if claims.SessionID == uuid.Nil {
		return nil, errors.New("session token carries no session ID")
	}

	return claims, nil
}
