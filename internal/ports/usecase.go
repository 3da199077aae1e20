package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"opsCalc/internal/domain"
)

// IHistoryUseCase — контракт бизнес-логики: расчёт, история пользователя, мягкое удаление, события из Kafka.
type IHistoryUseCase interface {
	PerformCalculation(ctx context.Context, email string, operands []float64, operator string) (*domain.Operation, error)
	GetHistory(ctx context.Context, email string) ([]domain.Operation, error)
	ClearHistoryRecord(ctx context.Context, email, id string) (*domain.Operation, error)
	ResetHistory(ctx context.Context, email string) (int64, error)
	HandleOperationEvent(ctx context.Context, op domain.Operation) error
}
