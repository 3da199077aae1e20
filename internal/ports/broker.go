package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer — отправка событий в брокер (Kafka). Топик берётся из конфига реализации.
// Use case публикует каждую сохранённую операцию: ключ — email, значение — запись в JSON.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
