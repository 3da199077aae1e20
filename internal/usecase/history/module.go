package history

import (
	"fmt"
	"log/slog"
	"strings"

	"opsCalc/internal/domain"
	"opsCalc/internal/pkg/email"
	"opsCalc/internal/ports"
)

var _ ports.IHistoryUseCase = (*UseCase)(nil)

// UseCase — бизнес-логика: расчёт операции, история пользователя, мягкое удаление.
type UseCase struct {
	store     ports.IOperationStore
	broker    ports.IProducer
	analytics ports.IOperationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс истории. broker и analytics могут быть nil — тогда события не публикуются и не пишутся в аналитику.
func New(store ports.IOperationStore, broker ports.IProducer, analytics ports.IOperationAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{store: store, broker: broker, analytics: analytics, log: log}
}

// checkEmail — общая проверка email для всех операций.
func checkEmail(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !email.Valid(addr) {
		return domain.ErrInvalidEmail
	}
	return nil
}
