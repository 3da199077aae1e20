package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "opsCalc/internal/api/grpc"
	apihttp "opsCalc/internal/api/http"
	"opsCalc/internal/api/http/controllers/operations"
	"opsCalc/internal/api/http/controllers/system"
	"opsCalc/internal/infrastructure/click"
	"opsCalc/internal/infrastructure/kafka"
	"opsCalc/internal/infrastructure/mongo"
	"opsCalc/internal/infrastructure/pg"
	"opsCalc/internal/infrastructure/redis"
	"opsCalc/internal/pkg/logger"
	"opsCalc/internal/ports"
	"opsCalc/internal/usecase/history"
)

const readinessInterval = 5 * time.Second

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (хранилище подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// openStore подключает выбранный бэкенд хранилища. closeFn закрывает соединение.
func (a *App) openStore(ctx context.Context, log *slog.Logger) (ports.IOperationStore, func(), error) {
	switch a.cfg.Store.Backend {
	case BackendMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		if err := cli.EnsureIndexes(ctx); err != nil {
			_ = cli.Close()
			return nil, nil, err
		}
		return mongo.NewOperationStore(cli, log), func() { _ = cli.Close() }, nil
	case BackendRedis:
		cli, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewOperationStore(cli, log), func() { _ = cli.Close() }, nil
	case BackendPostgres:
		db, err := pg.New(ctx, &a.cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewOperationStore(db, log), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", a.cfg.Store.Backend)
	}
}

// Run подключает хранилище, при необходимости Kafka и ClickHouse, запускает gRPC и HTTP (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := a.openStore(ctx, log)
	if err != nil {
		return fmt.Errorf("store %s: %w", a.cfg.Store.Backend, err)
	}
	defer closeStore()

	var (
		broker    ports.IProducer
		analytics ports.IOperationAnalytics
	)
	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		broker = producer
	}
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewOperationWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = writer
	}

	uc := history.New(store, broker, analytics, log)

	if a.cfg.Kafka.Enabled && analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	grpcAddr := a.cfg.Grpc.Host + ":" + a.cfg.Grpc.Port
	grpcSrv := apigrpc.NewServer(grpcAddr, store, log)
	go grpcSrv.WatchReadiness(ctx, readinessInterval)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	sysCtrl, err := system.New(store, log)
	if err != nil {
		return fmt.Errorf("system controller: %w", err)
	}
	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		sysCtrl,
		operations.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	log.Info("application started",
		"http", httpAddr,
		"grpc", grpcAddr,
		"store", a.cfg.Store.Backend,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}
