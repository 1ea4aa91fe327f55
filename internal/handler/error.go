package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/activity-board/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.MapErrorToCode(err)
	switch code {
	case domain.CodeBadRequest:
		RespondWithError(w, r, http.StatusBadRequest, string(code), err.Error())
	case domain.CodeUnauthorized:
		RespondWithError(w, r, http.StatusUnauthorized, string(code), "unauthorized")
	case domain.CodeUpstream:
		RespondWithError(w, r, http.StatusBadGateway, string(code), "activities api unavailable")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, string(code), "internal server error")
	}
}
