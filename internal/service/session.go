package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aidar/activity-board/internal/domain"
)

// SessionClaims represents session token claims
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens
type SessionService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns how long an issued token stays valid
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// NewSession generates a fresh session id and a token for it
func (s *SessionService) NewSession() (string, string, error) {
	sessionID := uuid.NewString()

	token, err := s.Issue(sessionID)
	if err != nil {
		return "", "", err
	}

	return sessionID, token, nil
}

// Issue signs a token for an existing session id
func (s *SessionService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate validates a session token and returns its claims
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, domain.ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
