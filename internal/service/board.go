package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aidar/activity-board/internal/domain"
	"github.com/aidar/activity-board/internal/repository"
	"github.com/aidar/activity-board/internal/ui"
)

// MessageDisplayDuration is how long a revealed message stays visible.
const MessageDisplayDuration = 5 * time.Second

// ActivityBoard drives the activity list, the select, the signup form and the
// message region of one page against the Activities API.
type ActivityBoard struct {
	elements ui.Elements
	repo     repository.ActivityRepository
	clock    clockwork.Clock
	logger   *slog.Logger

	// renderMu keeps the list and the select from one snapshot together
	renderMu sync.Mutex
}

// NewActivityBoard creates a board without touching the page.
func NewActivityBoard(elements ui.Elements, repo repository.ActivityRepository, clock clockwork.Clock, logger *slog.Logger) *ActivityBoard {
	return &ActivityBoard{
		elements: elements,
		repo:     repo,
		clock:    clock,
		logger:   logger,
	}
}

// Setup creates a board bound to the given elements and performs the
// initial fetch-and-render.
func Setup(ctx context.Context, elements ui.Elements, repo repository.ActivityRepository, clock clockwork.Clock, logger *slog.Logger) *ActivityBoard {
	b := NewActivityBoard(elements, repo, clock, logger)
	b.FetchAndRender(ctx)
	return b
}

// FetchAndRender replaces the list and the select options with a fresh
// snapshot of the activities. On failure only the list is replaced.
func (b *ActivityBoard) FetchAndRender(ctx context.Context) {
	activities, err := b.repo.List(ctx)
	if err != nil {
		b.showLoadFailure(err)
		return
	}

	html, err := RenderActivities(activities)
	if err != nil {
		b.showLoadFailure(err)
		return
	}

	opts := make([]ui.Option, 0, len(activities))
	for _, a := range activities {
		opts = append(opts, ui.Option{Value: a.Name, Label: a.Name})
	}

	// The fetch is not serialized; only the page update is.
	b.renderMu.Lock()
	defer b.renderMu.Unlock()
	b.elements.List.SetHTML(html)
	b.elements.Select.Replace(ui.PlaceholderOption, opts...)
}

func (b *ActivityBoard) showLoadFailure(err error) {
	b.renderMu.Lock()
	b.elements.List.SetHTML(LoadFailedHTML)
	b.renderMu.Unlock()
	b.logger.Error("Error fetching activities", "error", err)
}

// SubmitSignup registers the email from the form for the selected activity.
func (b *ActivityBoard) SubmitSignup(ctx context.Context) {
	email, activity := b.elements.Form.Values()

	message, err := b.repo.Signup(ctx, activity, email)
	switch {
	case err == nil:
		b.flash(message, ui.StyleSuccess)
		b.elements.Form.Reset()
	case domain.IsTransport(err):
		b.logger.Error("Error signing up", "activity", activity, "error", err)
		b.flash(SignupFailedText, ui.StyleError)
	default:
		text := SignupFallbackText
		if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Detail != "" {
			text = apiErr.Detail
		}
		b.flash(text, ui.StyleError)
	}
}

// HandleListClick receives every click inside the activity list. Only clicks
// on a participant's remove button trigger an unregister.
func (b *ActivityBoard) HandleListClick(ctx context.Context, click ui.ListClick) {
	if click.Action != ui.ActionRemoveParticipant {
		return
	}
	if click.Email == "" && click.Activity == "" {
		return
	}
	b.RemoveParticipant(ctx, click.Activity, click.Email)
}

// RemoveParticipant unregisters email from activity and refreshes the list on success.
func (b *ActivityBoard) RemoveParticipant(ctx context.Context, activity, email string) {
	_, err := b.repo.Unregister(ctx, activity, email)
	switch {
	case err == nil:
		b.FetchAndRender(ctx)
	case domain.IsTransport(err):
		b.logger.Error("Error unregistering participant", "activity", activity, "error", err)
		b.flash(RemoveFailedText, ui.StyleError)
	default:
		text := RemoveFallbackText
		if apiErr, ok := domain.AsAPIError(err); ok {
			// unregister, unlike signup, also falls back to the server message
			switch {
			case apiErr.Detail != "":
				text = apiErr.Detail
			case apiErr.Message != "":
				text = apiErr.Message
			}
		}
		b.flash(text, ui.StyleError)
	}
}

// flash reveals the message and schedules its own hide.
// Earlier timers are not cancelled.
func (b *ActivityBoard) flash(text string, style ui.MessageStyle) {
	b.elements.Message.Show(text, style)
	b.clock.AfterFunc(MessageDisplayDuration, b.elements.Message.Hide)
}
