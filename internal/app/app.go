package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"

	"github.com/aidar/activity-board/internal/config"
	"github.com/aidar/activity-board/internal/handler"
	"github.com/aidar/activity-board/internal/middleware"
	"github.com/aidar/activity-board/internal/repository"
	"github.com/aidar/activity-board/internal/repository/api"
	"github.com/aidar/activity-board/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config   *config.Config
	repo     repository.ActivityRepository
	clock    clockwork.Clock
	registry *service.BoardRegistry
	router   chi.Router
	server   *http.Server
	logger   *slog.Logger
}

// Option настраивает App при создании
type Option func(*App)

// WithClock подменяет часы (используется в тестах)
func WithClock(clock clockwork.Clock) Option {
	return func(a *App) {
		a.clock = clock
	}
}

// WithRepository подменяет клиент Activities API
func WithRepository(repo repository.ActivityRepository) Option {
	return func(a *App) {
		a.repo = repo
	}
}

// New создает новый экземпляр приложения
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("activities api url is required")
	}

	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config: cfg,
		clock:  clockwork.NewRealClock(),
		logger: logger,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Клиент Activities API
	if a.repo == nil {
		a.repo = api.NewActivityRepository(a.config.API.BaseURL, a.config.API.Timeout, a.logger)
	}
	a.logger.Info("Activities API client configured", "base_url", a.config.API.BaseURL)

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Слой сервисов
	sessionService := service.NewSessionService(a.config.Session.Secret, a.config.Session.GetTTL())
	a.registry = service.NewBoardRegistry(a.repo, a.clock, a.logger, a.config.Session.GetTTL())

	// HTTP обработчики
	boardHandler := handler.NewBoardHandler(a.registry, a.logger)

	// Middleware сессий
	sessionMiddleware := middleware.Session(sessionService, a.config.Session.Cookie, a.logger)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Страница доски (требует сессию, выдается автоматически)
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)

		r.Get("/", boardHandler.Index)
		r.Get("/board", boardHandler.Snapshot)
		r.Post("/signup", boardHandler.Signup)
		r.Post("/activities/click", boardHandler.ListClick)
		r.Post("/refresh", boardHandler.Refresh)
	})

	a.router = r

	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик (доступен после Initialize)
func (a *App) Handler() http.Handler {
	return a.router
}

// Registry возвращает реестр страниц (доступен после Initialize)
func (a *App) Registry() *service.BoardRegistry {
	return a.registry
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
