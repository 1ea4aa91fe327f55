package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/activity-board/internal/service"
)

const cookieName = "board_session"

func newSessionHandler(t *testing.T, svc *service.SessionService, seen *string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return Session(svc, cookieName, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = GetSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestSession_IssuesCookieWhenMissing(t *testing.T) {
	svc := service.NewSessionService("test-secret", time.Hour)
	var seen string
	h := newSessionHandler(t, svc, &seen)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	claims, err := svc.Validate(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, seen, claims.SessionID)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	svc := service.NewSessionService("test-secret", time.Hour)
	sessionID, token, err := svc.NewSession()
	require.NoError(t, err)

	var seen string
	h := newSessionHandler(t, svc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, sessionID, seen)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_ReplacesInvalidCookie(t *testing.T) {
	svc := service.NewSessionService("test-secret", time.Hour)
	var seen string
	h := newSessionHandler(t, svc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotEmpty(t, seen)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.NotEqual(t, "forged", rec.Result().Cookies()[0].Value)
}

func TestGetSessionIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetSessionIDFromContext(req.Context()))
}
