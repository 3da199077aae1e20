package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"opsCalc/internal/domain"
	"opsCalc/internal/ports"
)

var _ ports.IOperationStore = (*OperationStore)(nil)

// Схема ключей:
//
//	op:{id}      — запись операции в JSON
//	ops:{email}  — sorted set id операций пользователя, score = createdAt в микросекундах
const (
	opKeyPrefix   = "op:"
	userKeyPrefix = "ops:"
)

// maxTxRetries — сколько раз повторять транзакцию WATCH при конкурентном изменении ключа.
const maxTxRetries = 5

func opKey(id string) string {
	return opKeyPrefix + id
}

func userKey(email string) string {
	return userKeyPrefix + email
}

// operationRecord — значение ключа op:{id}.
type operationRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Operands  []float64 `json:"operands"`
	Operator  string    `json:"operator"`
	Result    float64   `json:"result"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r operationRecord) toDomain() domain.Operation {
	return domain.Operation{
		ID:        r.ID,
		Email:     r.Email,
		Operands:  r.Operands,
		Operator:  r.Operator,
		Result:    r.Result,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// OperationStore реализует ports.IOperationStore поверх Redis (ключ-значение + sorted set на пользователя).
type OperationStore struct {
	cli *Client
	log *slog.Logger
}

// NewOperationStore возвращает хранилище операций в Redis.
func NewOperationStore(cli *Client, log *slog.Logger) *OperationStore {
	return &OperationStore{cli: cli, log: log}
}

// Create пишет запись и индекс пользователя в одной MULTI/EXEC: частичная запись не видна.
func (s *OperationStore) Create(ctx context.Context, op domain.Operation) (string, error) {
	rec := operationRecord{
		ID:        uuid.NewString(),
		Email:     op.Email,
		Operands:  op.Operands,
		Operator:  op.Operator,
		Result:    op.Result,
		CreatedAt: op.CreatedAt,
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal operation: %w", err)
	}

	_, err = s.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, opKey(rec.ID), payload, 0)
		pipe.ZAdd(ctx, userKey(rec.Email), redis.Z{
			Score:  float64(rec.CreatedAt.UnixMicro()),
			Member: rec.ID,
		})
		return nil
	})
	if err != nil {
		s.log.Debug("Create failed", "error", err)
		return "", err
	}
	return rec.ID, nil
}

// ListByEmail читает id из sorted set по убыванию времени и достаёт записи одним MGET.
func (s *OperationStore) ListByEmail(ctx context.Context, email string) ([]domain.Operation, error) {
	recs, err := s.userRecords(ctx, email)
	if err != nil {
		s.log.Debug("ListByEmail failed", "error", err)
		return nil, err
	}
	list := make([]domain.Operation, 0, len(recs))
	for _, r := range recs {
		if r.IsDeleted {
			continue
		}
		list = append(list, r.toDomain())
	}
	return list, nil
}

// userRecords возвращает все записи пользователя (включая удалённые), новые сначала.
func (s *OperationStore) userRecords(ctx context.Context, email string) ([]operationRecord, error) {
	ids, err := s.cli.ZRevRange(ctx, userKey(email), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = opKey(id)
	}
	vals, err := s.cli.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	recs := make([]operationRecord, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// индекс ссылается на отсутствующий ключ
			s.log.Warn("dangling operation index entry", "id", ids[i])
			continue
		}
		var r operationRecord
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("decode operation %s: %w", ids[i], err)
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// MarkDeleted помечает запись удалённой. Принадлежность проверяется по индексу пользователя и по email в записи.
func (s *OperationStore) MarkDeleted(ctx context.Context, email, id string) (*domain.Operation, error) {
	if err := s.cli.ZScore(ctx, userKey(email), id).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		s.log.Debug("MarkDeleted failed", "error", err)
		return nil, err
	}
	rec, _, err := s.markDeleted(ctx, email, id)
	if err != nil {
		return nil, err
	}
	op := rec.toDomain()
	return &op, nil
}

// MarkAllDeleted помечает записи пользователя по одной; атомарности между записями нет.
func (s *OperationStore) MarkAllDeleted(ctx context.Context, email string) (int64, error) {
	recs, err := s.userRecords(ctx, email)
	if err != nil {
		s.log.Debug("MarkAllDeleted failed", "error", err)
		return 0, err
	}
	var n int64
	for _, r := range recs {
		if r.IsDeleted {
			continue
		}
		_, changed, err := s.markDeleted(ctx, email, r.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return n, err
		}
		if changed {
			n++
		}
	}
	if n == 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// markDeleted выставляет isDeleted под WATCH ключа записи. changed == false, если запись уже была удалена.
func (s *OperationStore) markDeleted(ctx context.Context, email, id string) (operationRecord, bool, error) {
	key := opKey(id)
	var (
		rec     operationRecord
		changed bool
	)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrNotFound
			}
			return err
		}
		rec = operationRecord{}
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decode operation %s: %w", id, err)
		}
		if rec.Email != email {
			return domain.ErrNotFound
		}
		if rec.IsDeleted {
			changed = false
			return nil
		}
		rec.IsDeleted = true
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal operation: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		changed = true
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.cli.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.log.Debug("markDeleted failed", "id", id, "error", err)
			}
			return operationRecord{}, false, err
		}
		return rec, changed, nil
	}
	return operationRecord{}, false, fmt.Errorf("mark deleted %s: %w", id, redis.TxFailedErr)
}

// Ping проверяет доступность Redis.
func (s *OperationStore) Ping(ctx context.Context) error {
	return s.cli.Ping(ctx)
}
