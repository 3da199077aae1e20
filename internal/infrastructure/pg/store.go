package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"opsCalc/internal/domain"
	"opsCalc/internal/ports"
)

var _ ports.IOperationStore = (*OperationStore)(nil)

// OperationStore реализует ports.IOperationStore для PostgreSQL. Операнды хранятся массивом DOUBLE PRECISION[].
type OperationStore struct {
	db  *DB
	log *slog.Logger
}

// NewOperationStore возвращает хранилище операций.
func NewOperationStore(db *DB, log *slog.Logger) *OperationStore {
	return &OperationStore{db: db, log: log}
}

// Create сохраняет операцию одним INSERT.
func (s *OperationStore) Create(ctx context.Context, op domain.Operation) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (id, email, operands, operator, result, is_deleted, created_at)
		 VALUES ($1, $2, $3, $4, $5, FALSE, $6)`,
		id, op.Email, pq.Array(op.Operands), op.Operator, op.Result, op.CreatedAt)
	if err != nil {
		s.log.Debug("Create failed", "error", err)
		return "", err
	}
	return id, nil
}

// ListByEmail возвращает неудалённые операции пользователя (последние сначала).
func (s *OperationStore) ListByEmail(ctx context.Context, email string) ([]domain.Operation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, operands, operator, result, is_deleted, created_at
		 FROM operations
		 WHERE email = $1 AND is_deleted = FALSE
		 ORDER BY created_at DESC`, email)
	if err != nil {
		s.log.Debug("ListByEmail failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	list := make([]domain.Operation, 0)
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

// MarkDeleted обновляет одну строку по (id, email). Повторное удаление возвращает ту же строку.
func (s *OperationStore) MarkDeleted(ctx context.Context, email, id string) (*domain.Operation, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE operations SET is_deleted = TRUE
		 WHERE id = $1 AND email = $2
		 RETURNING id, email, operands, operator, result, is_deleted, created_at`, id, email)
	op, err := scanOperation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.log.Debug("MarkDeleted failed", "error", err)
		return nil, err
	}
	return &op, nil
}

// MarkAllDeleted помечает удалёнными все неудалённые операции пользователя.
func (s *OperationStore) MarkAllDeleted(ctx context.Context, email string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE operations SET is_deleted = TRUE WHERE email = $1 AND is_deleted = FALSE`, email)
	if err != nil {
		s.log.Debug("MarkAllDeleted failed", "error", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// Ping проверяет доступность БД (readiness).
func (s *OperationStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOperation(sc scanner) (domain.Operation, error) {
	var (
		op       domain.Operation
		operands pq.Float64Array
	)
	if err := sc.Scan(&op.ID, &op.Email, &operands, &op.Operator, &op.Result, &op.IsDeleted, &op.CreatedAt); err != nil {
		return domain.Operation{}, err
	}
	op.Operands = []float64(operands)
	op.CreatedAt = op.CreatedAt.UTC()
	return op, nil
}
