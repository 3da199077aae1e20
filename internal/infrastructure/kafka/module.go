package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config — настройки Kafka. Переменные: CALCULATOR_KAFKA_ENABLED, _BROKERS, _TOPIC, _GROUP_ID.
// При Enabled=false приложение не публикует события и не запускает консьюмера.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	Topic   string `envconfig:"TOPIC" default:"opscalc.operations"`
	GroupID string `envconfig:"GROUP_ID" default:"opscalc-analytics"`
	// BatchTimeout — сколько продюсер ждёт добора пачки; Send блокируется на это время.
	BatchTimeout time.Duration `envconfig:"BATCH_TIMEOUT" default:"10ms"`
}

// brokersSlice возвращает список брокеров из строки (через запятую), пустые элементы отбрасываются.
func (c *Config) brokersSlice() []string {
	if c == nil || strings.TrimSpace(c.Brokers) == "" {
		return []string{"localhost:9092"}
	}
	var out []string
	for _, p := range strings.Split(c.Brokers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client — конфиг и фабрики продюсера/консьюмера. Подключение к брокеру при создании Writer/Reader.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer создаёт продюсера в топик операций. После использования вызови Close().
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokersSlice()...),
		Topic:                  c.cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           c.cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return &Producer{w: w, topic: c.cfg.Topic}
}

// Consumer создаёт консьюмера топика операций (consumer group). После использования вызови Close().
func (c *Client) Consumer() *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokersSlice(),
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.GroupID,
	})
	return &Consumer{r: r}
}
