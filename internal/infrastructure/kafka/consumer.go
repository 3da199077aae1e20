package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"opsCalc/internal/domain"
	"opsCalc/internal/ports"
)

// reader — то, что консьюмеру нужно от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Паузы между повторами обработки одного сообщения.
const (
	defaultRetryMin = 100 * time.Millisecond
	defaultRetryMax = 10 * time.Second
)

// Consumer читает события операций, декодирует их в domain.Operation и передаёт в use case.
type Consumer struct {
	r   reader
	uc  ports.IHistoryUseCase
	log *slog.Logger

	retryMin time.Duration
	retryMax time.Duration
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IHistoryUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	c.retryMin = defaultRetryMin
	c.retryMax = defaultRetryMax
	return c
}

// Run в цикле читает сообщения, вызывает uc.HandleOperationEvent и коммитит при успехе.
// Битые сообщения коммитятся и пропускаются. При ошибке обработки то же сообщение повторяется
// с растущей паузой: следующий offset не читается, пока текущий не обработан.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var op domain.Operation
		if err := json.Unmarshal(msg.Value, &op); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.handle(ctx, msg, op); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle повторяет обработку сообщения до успеха. Ошибку возвращает только при отмене ctx.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message, op domain.Operation) error {
	wait := c.retryMin
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.uc.HandleOperationEvent(ctx, op)
		if err == nil {
			return nil
		}
		c.log.Warn("kafka handle error, retrying", "error", err, "attempt", attempt, "backoff", wait,
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if wait *= 2; wait > c.retryMax {
			wait = c.retryMax
		}
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
