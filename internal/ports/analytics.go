package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"opsCalc/internal/domain"
)

// IOperationAnalytics — приёмник событий о сохранённых операциях (ClickHouse).
// Повторная доставка одного события допустима: реализация схлопывает записи по ID.
type IOperationAnalytics interface {
	WriteOperation(ctx context.Context, op domain.Operation) error
}
