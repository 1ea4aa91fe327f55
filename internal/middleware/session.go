package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aidar/activity-board/internal/service"
)

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

const (
	// SessionIDKey ключ контекста для ID сессии
	SessionIDKey ContextKey = "session_id"
)

// Session создает middleware, которое гарантирует наличие сессии у запроса.
// Если cookie отсутствует или невалидна, выдается новая сессия.
func Session(sessionService *service.SessionService, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Пробуем взять сессию из cookie
			if cookie, err := r.Cookie(cookieName); err == nil {
				claims, err := sessionService.Validate(cookie.Value)
				if err == nil {
					ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				logger.Debug("Discarding invalid session cookie", "error", err)
			}

			// Выдаем новую сессию
			sessionID, token, err := sessionService.NewSession()
			if err != nil {
				logger.Error("Failed to create session", "error", err)
				http.Error(w, `{"error":{"code":"INTERNAL_ERROR","message":"failed to create session"}}`, http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(sessionService.TTL().Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			// Добавляем ID сессии в контекст
			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionIDFromContext извлекает ID сессии из контекста
func GetSessionIDFromContext(ctx context.Context) string {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	if !ok {
		return ""
	}
	return sessionID
}
