package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aidar/activity-board/internal/domain"
)

// ActivityRepository реализует repository.ActivityRepository поверх HTTP Activities API
type ActivityRepository struct {
	client *resty.Client
	logger *slog.Logger
}

// NewActivityRepository создает новый экземпляр ActivityRepository
func NewActivityRepository(baseURL string, timeout time.Duration, logger *slog.Logger) *ActivityRepository {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger: logger})

	return &ActivityRepository{client: client, logger: logger}
}

// messageResponse представляет тело ответа signup/unregister
type messageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// List получает полный список занятий
func (r *ActivityRepository) List(ctx context.Context) (domain.ActivityCollection, error) {
	const op = "list activities"

	resp, err := r.client.R().
		SetContext(ctx).
		Get("/activities")
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	if resp.IsError() {
		return nil, r.apiError(op, resp)
	}

	var activities domain.ActivityCollection
	if err := json.Unmarshal(resp.Body(), &activities); err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return activities, nil
}

// Signup записывает email на занятие
func (r *ActivityRepository) Signup(ctx context.Context, activity, email string) (string, error) {
	const op = "signup"

	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("name", activity).
		SetQueryParam("email", email).
		Post("/activities/{name}/signup")
	if err != nil {
		return "", &domain.TransportError{Op: op, Err: err}
	}

	return r.messageResult(op, resp)
}

// Unregister удаляет email из списка участников занятия
func (r *ActivityRepository) Unregister(ctx context.Context, activity, email string) (string, error) {
	const op = "unregister"

	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("name", activity).
		SetQueryParam("email", email).
		Delete("/activities/{name}/unregister")
	if err != nil {
		return "", &domain.TransportError{Op: op, Err: err}
	}

	return r.messageResult(op, resp)
}

func (r *ActivityRepository) messageResult(op string, resp *resty.Response) (string, error) {
	if resp.IsError() {
		return "", r.apiError(op, resp)
	}

	var body messageResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", &domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return body.Message, nil
}

// apiError собирает APIError из неуспешного ответа.
// Тело без JSON дает пустые Detail и Message.
func (r *ActivityRepository) apiError(op string, resp *resty.Response) *domain.APIError {
	var body messageResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		r.logger.Debug("Error response body is not JSON",
			"component", "activities_api",
			"op", op,
			"status", resp.StatusCode(),
			"error", err,
		)
	}

	return &domain.APIError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Detail:     body.Detail,
		Message:    body.Message,
	}
}

// restyLogger направляет внутренние сообщения resty в slog
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "activities_api")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "activities_api")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "activities_api")
}
