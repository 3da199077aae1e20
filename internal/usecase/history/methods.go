package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"opsCalc/internal/domain"
)

// PerformCalculation — проверяет вход, считает, сохраняет запись и публикует событие. Возвращает сохранённую операцию.
// Если запись не сохранилась, запрос падает целиком: результат без истории не возвращаем.
func (u *UseCase) PerformCalculation(ctx context.Context, email string, operands []float64, operator string) (*domain.Operation, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if len(operands) < domain.MinOperands {
		return nil, domain.ErrTooFewOperands
	}
	if operator == "" {
		return nil, fmt.Errorf("%w: operator is required", domain.ErrInvalidInput)
	}

	result, err := domain.Compute(operands, operator)
	if err != nil {
		calculationsTotal.WithLabelValues(operatorLabel(operator), outcome(err)).Inc()
		return nil, err
	}

	op := domain.Operation{
		Email:     email,
		Operands:  append([]float64(nil), operands...),
		Operator:  operator,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	id, err := u.store.Create(ctx, op)
	if err != nil {
		calculationsTotal.WithLabelValues(operator, "store_error").Inc()
		return nil, fmt.Errorf("save operation: %w", err)
	}
	op.ID = id
	calculationsTotal.WithLabelValues(operator, "ok").Inc()
	u.log.Info("operation saved", "id", id, "operator", operator, "result", result)

	u.publish(ctx, op)

	return &op, nil
}

// publish отправляет сохранённую операцию в брокер. Ошибка брокера только логируется.
func (u *UseCase) publish(ctx context.Context, op domain.Operation) {
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(op)
	if err != nil {
		u.log.Warn("operation marshal", "id", op.ID, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(op.Email), value); err != nil {
		u.log.Warn("broker send", "id", op.ID, "error", err)
		return
	}
	u.log.Debug("operation published", "id", op.ID)
}

// GetHistory — неудалённые операции пользователя, новые сначала. Пустой список не ошибка.
func (u *UseCase) GetHistory(ctx context.Context, email string) ([]domain.Operation, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	list, err := u.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return list, nil
}

// ClearHistoryRecord — мягко удаляет одну запись пользователя.
func (u *UseCase) ClearHistoryRecord(ctx context.Context, email, id string) (*domain.Operation, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	op, err := u.store.MarkDeleted(ctx, email, id)
	if err != nil {
		return nil, fmt.Errorf("mark deleted: %w", err)
	}
	u.log.Info("operation deleted", "id", id)
	return op, nil
}

// ResetHistory — мягко удаляет всю историю пользователя, возвращает число помеченных записей.
func (u *UseCase) ResetHistory(ctx context.Context, email string) (int64, error) {
	if err := checkEmail(email); err != nil {
		return 0, err
	}
	n, err := u.store.MarkAllDeleted(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("mark all deleted: %w", err)
	}
	u.log.Info("history reset", "count", n)
	return n, nil
}

// HandleOperationEvent вызывается консьюмером при получении сообщения из топика операций.
func (u *UseCase) HandleOperationEvent(ctx context.Context, op domain.Operation) error {
	if u.analytics == nil {
		return errors.New("analytics sink is not configured")
	}
	if err := u.analytics.WriteOperation(ctx, op); err != nil {
		u.log.Warn("analytics write", "id", op.ID, "error", err)
		return err
	}
	u.log.Info("operation stored to click", "id", op.ID, "operator", op.Operator, "result", op.Result)
	return nil
}
