package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"

	"opsCalc/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

var eventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "opscalc",
		Name:      "operation_events_published_total",
		Help:      "Operation events sent to Kafka by result",
	},
	[]string{"result"},
)

// writer — то, что продюсеру нужно от kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует сохранённые операции в топик. Ключ — email пользователя,
// поэтому события одного пользователя идут в одну партицию и читаются по порядку.
type Producer struct {
	w     writer
	topic string
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send публикует одно событие операции. Значение — запись в JSON, тип указан в заголовке.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	err := p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		eventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("kafka publish to %s: %w", p.topic, err)
	}
	eventsPublished.WithLabelValues("ok").Inc()
	return nil
}

// Close дожидается отправки буфера и закрывает соединения.
func (p *Producer) Close() error {
	return p.w.Close()
}
