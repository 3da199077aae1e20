package click

import (
	"context"
	"fmt"

	"opsCalc/internal/domain"
	"opsCalc/internal/ports"
)

var _ ports.IOperationAnalytics = (*OperationWriter)(nil)

const operationsAnalyticsTable = "operations_analytics"

// OperationWriter пишет операции в ClickHouse для аналитики (GROUP BY operator, по времени, по пользователю).
type OperationWriter struct {
	db    *Client
	table string
}

// NewOperationWriter создаёт писатель операций для аналитики в базе из конфига клиента.
func NewOperationWriter(db *Client) *OperationWriter {
	return &OperationWriter{db: db, table: db.database + "." + operationsAnalyticsTable}
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызывается один раз при старте.
// ReplacingMergeTree по id схлопывает повторные доставки одного события.
func (w *OperationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id String,
			email String,
			operands Array(Float64),
			operands_count UInt16,
			operator LowCardinality(String),
			result Float64,
			created_at DateTime64(3)
		) ENGINE = ReplacingMergeTree()
		PARTITION BY toYYYYMM(created_at)
		ORDER BY (operator, created_at, id)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteOperation реализует ports.IOperationAnalytics: пишет одну операцию в ClickHouse.
func (w *OperationWriter) WriteOperation(ctx context.Context, op domain.Operation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, email, operands, operands_count, operator, result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		op.ID, op.Email, op.Operands, uint16(len(op.Operands)), op.Operator, op.Result, op.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}
