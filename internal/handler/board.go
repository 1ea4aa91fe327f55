package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aidar/activity-board/internal/domain"
	"github.com/aidar/activity-board/internal/middleware"
	"github.com/aidar/activity-board/internal/service"
	"github.com/aidar/activity-board/internal/ui"
)

// BoardHandler обрабатывает эндпоинты страницы занятий
type BoardHandler struct {
	registry *service.BoardRegistry
	logger   *slog.Logger
}

// NewBoardHandler создает новый BoardHandler
func NewBoardHandler(registry *service.BoardRegistry, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		registry: registry,
		logger:   logger,
	}
}

// page возвращает страницу текущей сессии
func (h *BoardHandler) page(r *http.Request) (*service.Page, error) {
	sessionID := middleware.GetSessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	return h.registry.Open(r.Context(), sessionID), nil
}

// Index обрабатывает GET /
func (h *BoardHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	html, err := renderPage(page.Document.Snapshot())
	if err != nil {
		h.logger.Error("Failed to render page", "error", err)
		HandleError(w, r, err)
		return
	}

	RespondWithHTML(w, r, http.StatusOK, html)
}

// Snapshot обрабатывает GET /board
func (h *BoardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, page.Document.Snapshot())
}

// Signup обрабатывает POST /signup (form: email, activity)
func (h *BoardHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		HandleError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidForm, err))
		return
	}

	page, err := h.page(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	// Заполняем форму так, как это сделал бы пользователь, и отправляем ее
	page.Document.Fill(r.PostForm.Get("email"), r.PostForm.Get("activity"))
	page.Board.SubmitSignup(r.Context())

	RedirectToBoard(w, r)
}

// ListClick обрабатывает POST /activities/click (form: action, email, activity)
func (h *BoardHandler) ListClick(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		HandleError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidForm, err))
		return
	}

	page, err := h.page(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	page.Board.HandleListClick(r.Context(), ui.ListClick{
		Action:   r.PostForm.Get("action"),
		Email:    r.PostForm.Get("email"),
		Activity: r.PostForm.Get("activity"),
	})

	RedirectToBoard(w, r)
}

// Refresh обрабатывает POST /refresh
func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	page.Board.FetchAndRender(r.Context())

	RedirectToBoard(w, r)
}
