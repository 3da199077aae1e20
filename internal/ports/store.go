package ports

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"

	"opsCalc/internal/domain"
)

// IOperationStore — контракт хранилища истории операций (MongoDB, Redis или PostgreSQL).
// Только хранилище обращается к данным; остальные слои работают через этот интерфейс.
type IOperationStore interface {
	// Create сохраняет новую запись и возвращает её идентификатор.
	Create(ctx context.Context, op domain.Operation) (string, error)
	// ListByEmail возвращает неудалённые записи пользователя, новые сначала.
	ListByEmail(ctx context.Context, email string) ([]domain.Operation, error)
	// MarkDeleted помечает удалённой запись с данными email и id. Нет такой записи — domain.ErrNotFound.
	MarkDeleted(ctx context.Context, email, id string) (*domain.Operation, error)
	// MarkAllDeleted помечает удалёнными все неудалённые записи пользователя. Нечего удалять — domain.ErrNotFound.
	MarkAllDeleted(ctx context.Context, email string) (int64, error)
	Ping(ctx context.Context) error
}
