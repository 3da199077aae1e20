package app

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"opsCalc/internal/api/http"
	"opsCalc/internal/infrastructure/click"
	"opsCalc/internal/infrastructure/kafka"
	"opsCalc/internal/infrastructure/mongo"
	"opsCalc/internal/infrastructure/pg"
	"opsCalc/internal/infrastructure/redis"
	"opsCalc/internal/pkg/logger"
)

const AppName = "CALCULATOR"

// Бэкенды хранилища истории.
const (
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// GrpcConfig — настройки gRPC-сервера (health). Переменные: CALCULATOR_GRPC_HOST, CALCULATOR_GRPC_PORT.
type GrpcConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// StoreConfig — выбор хранилища истории. Переменная: CALCULATOR_STORE_BACKEND (mongo, redis, postgres).
type StoreConfig struct {
	Backend string `envconfig:"BACKEND" default:"mongo"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	Log        logger.Config     `envconfig:"LOG"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       GrpcConfig        `envconfig:"GRPC"`
	Store      StoreConfig       `envconfig:"STORE"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Postgres   pg.Config         `envconfig:"POSTGRES"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMongo, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.ClickHouse.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("clickhouse analytics requires kafka to be enabled")
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Переменные окружения имеют приоритет над .env.
func LoadCfg(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("config: .env not loaded, using environment: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
