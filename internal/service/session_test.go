package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/activity-board/internal/domain"
)

func TestSessionService_IssueAndValidate(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	sessionID, token, err := svc.NewSession()
	require.NoError(t, err)
	_, err = uuid.Parse(sessionID)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestSessionService_RejectsForeignSecret(t *testing.T) {
	issuer := NewSessionService("secret-a", time.Hour)
	validator := NewSessionService("secret-b", time.Hour)

	_, token, err := issuer.NewSession()
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestSessionService_RejectsExpired(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	_, token, err := svc.NewSession()
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestSessionService_RejectsGarbage(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	token, err := svc.Issue("not-a-uuid")
	require.NoError(t, err)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
