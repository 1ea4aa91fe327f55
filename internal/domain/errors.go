package domain

import (
	"errors"
	"fmt"
)

// Доменные ошибки веб-клиента
var (
	// ErrSessionNotFound возвращается когда в контексте запроса нет сессии
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidToken возвращается когда токен сессии невалиден
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidForm возвращается при некорректных данных формы
	ErrInvalidForm = errors.New("invalid form")
)

// TransportError описывает сбой транспорта: сеть недоступна или тело ответа не разобрано
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError описывает ответ Activities API с неуспешным статусом
type APIError struct {
	Op         string
	StatusCode int
	Detail     string
	Message    string
}

func (e *APIError) Error() string {
	reason := e.Detail
	if reason == "" {
		reason = e.Message
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, reason)
}

// AsAPIError извлекает APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransport проверяет, является ли ошибка сбоем транспорта
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// ErrorCode представляет коды ошибок обслуживаемого HTTP API
type ErrorCode string

// Коды ошибок
const (
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeUpstream     ErrorCode = "UPSTREAM_ERROR"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// MapErrorToCode преобразует ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidForm):
		return CodeBadRequest
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	case IsTransport(err):
		return CodeUpstream
	default:
		if _, ok := AsAPIError(err); ok {
			return CodeUpstream
		}
		return CodeInternal
	}
}
