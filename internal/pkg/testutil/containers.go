// Package testutil содержит хелперы для интеграционных тестов хранилищ: контейнеры и общий набор проверок.
package testutil

import (
	"context"
	"flag"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 5 * time.Minute

// RunWithContainer — тело TestMain для пакета с интеграционными тестами.
// В режиме -short контейнер не поднимается: тесты пакета пропускают себя сами через SkipIfShort.
// Иначе start поднимает контейнер, после m.Run он останавливается.
func RunWithContainer(m *testing.M, name string, start func(ctx context.Context) (testcontainers.Container, error)) int {
	flag.Parse()
	if testing.Short() {
		return m.Run()
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	log.Printf("starting %s container", name)
	c, err := start(ctx)
	if err != nil {
		log.Printf("%s container failed: %v", name, err)
		return 1
	}

	code := m.Run()

	if err := c.Terminate(context.Background()); err != nil {
		log.Printf("%s container terminate: %v", name, err)
	}
	return code
}

// SkipIfShort пропускает интеграционный тест в режиме -short.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

// mappedPort — проброшенный порт контейнера (результат MappedPort).
type mappedPort interface {
	Port() string
}

// hostPort возвращает хост контейнера и номер проброшенного порта.
func hostPort(ctx context.Context, c testcontainers.Container, mapped mappedPort, mapErr error) (string, string, error) {
	if mapErr != nil {
		return "", "", fmt.Errorf("container port: %w", mapErr)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("container host: %w", err)
	}
	return host, mapped.Port(), nil
}

// PostgresContainer — PostgreSQL в Docker и параметры подключения.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL в Docker.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const (
		user     = "test"
		password = "test"
		dbName   = "opscalc_test"
	)

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}

	mapped, err := container.MappedPort(ctx, "5432")
	host, port, err := hostPort(ctx, container, mapped, err)
	if err != nil {
		return nil, err
	}
	return &PostgresContainer{
		PostgresContainer: container,
		Host:              host,
		Port:              port,
		User:              user,
		Password:          password,
		DBName:            dbName,
	}, nil
}

// RedisContainer — Redis в Docker и параметры подключения.
type RedisContainer struct {
	*redis.RedisContainer
	Host string
	Port string
}

// NewRedisContainer поднимает Redis в Docker.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}

	mapped, err := container.MappedPort(ctx, "6379")
	host, port, err := hostPort(ctx, container, mapped, err)
	if err != nil {
		return nil, err
	}
	return &RedisContainer{RedisContainer: container, Host: host, Port: port}, nil
}

// MongoContainer — MongoDB в Docker и параметры подключения.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Host string
	Port string
}

// NewMongoContainer поднимает MongoDB в Docker.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}

	mapped, err := container.MappedPort(ctx, "27017")
	host, port, err := hostPort(ctx, container, mapped, err)
	if err != nil {
		return nil, err
	}
	return &MongoContainer{MongoDBContainer: container, Host: host, Port: port}, nil
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// ClickHouseContainer — ClickHouse в Docker и параметры подключения по нативному протоколу.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse в Docker.
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	const (
		user     = "default"
		password = ""
		database = "default"
	)

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}

	mapped, err := container.MappedPort(ctx, "9000")
	host, port, err := hostPort(ctx, container, mapped, err)
	if err != nil {
		return nil, err
	}
	return &ClickHouseContainer{
		ClickHouseContainer: container,
		Host:                host,
		Port:                port,
		User:                user,
		Password:            password,
		Database:            database,
	}, nil
}
