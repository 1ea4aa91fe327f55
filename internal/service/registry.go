package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aidar/activity-board/internal/repository"
	"github.com/aidar/activity-board/internal/ui"
)

// Page is one browser session's document and the board driving it
type Page struct {
	Document *ui.Document
	Board    *ActivityBoard

	setup    sync.Once
	lastSeen time.Time
}

// BoardRegistry keeps one Page per session and sets boards up lazily
type BoardRegistry struct {
	repo    repository.ActivityRepository
	clock   clockwork.Clock
	logger  *slog.Logger
	idleTTL time.Duration

	mu    sync.Mutex
	pages map[string]*Page
}

// NewBoardRegistry creates a new BoardRegistry
func NewBoardRegistry(repo repository.ActivityRepository, clock clockwork.Clock, logger *slog.Logger, idleTTL time.Duration) *BoardRegistry {
	return &BoardRegistry{
		repo:    repo,
		clock:   clock,
		logger:  logger,
		idleTTL: idleTTL,
		pages:   make(map[string]*Page),
	}
}

// Open returns the page of a session, creating it and running the initial
// fetch-and-render on first access
func (r *BoardRegistry) Open(ctx context.Context, sessionID string) *Page {
	now := r.clock.Now()

	r.mu.Lock()
	r.evictIdle(now)
	page, ok := r.pages[sessionID]
	if !ok {
		page = &Page{Document: ui.NewDocument()}
		r.pages[sessionID] = page
		r.logger.Info("Board page created", "session_id", sessionID)
	}
	page.lastSeen = now
	r.mu.Unlock()

	// The initial fetch runs outside the registry lock
	page.setup.Do(func() {
		page.Board = Setup(ctx, page.Document.Elements(), r.repo, r.clock, r.logger.With("session_id", sessionID))
	})

	return page
}

// Len returns the number of live pages
func (r *BoardRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// evictIdle drops pages not opened within idleTTL; caller holds r.mu
func (r *BoardRegistry) evictIdle(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, page := range r.pages {
		if now.Sub(page.lastSeen) > r.idleTTL {
			delete(r.pages, id)
			r.logger.Info("Board page evicted", "session_id", id)
		}
	}
}
