package repository

import (
	"context"

	"github.com/aidar/activity-board/internal/domain"
)

// ActivityRepository определяет методы для работы с удаленным Activities API
type ActivityRepository interface {
	// List получает полный список занятий (GET /activities)
	List(ctx context.Context) (domain.ActivityCollection, error)

	// Signup записывает email на занятие и возвращает сообщение сервера
	Signup(ctx context.Context, activity, email string) (string, error)

	// Unregister удаляет email из списка участников и возвращает сообщение сервера
	Unregister(ctx context.Context, activity, email string) (string, error)
}
