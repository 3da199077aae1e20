package grpc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"opsCalc/internal/api/grpc/interceptors"
)

// ServiceName — имя сервиса в протоколе grpc.health.v1.
const ServiceName = "opscalc.History"

// Pinger — то, что нужно для проверки готовности (хранилище операций).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server — gRPC-сервер со стандартным health-сервисом. Статус обновляется по пингу хранилища.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	pinger Pinger
	addr   string
	log    *slog.Logger
}

// NewServer создаёт gRPC-сервер и регистрирует health. Логирующий интерцептор пишет метод, latency_ms и grpc_code.
func NewServer(addr string, pinger Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return &Server{grpc: s, health: hs, pinger: pinger, addr: addr, log: log}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// WatchReadiness пингует хранилище с интервалом и выставляет статус health до отмены ctx.
func (s *Server) WatchReadiness(ctx context.Context, interval time.Duration) {
	s.CheckReadiness(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckReadiness(ctx)
		}
	}
}

// CheckReadiness один раз пингует хранилище и обновляет статус.
func (s *Server) CheckReadiness(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(pingCtx); err != nil {
		s.log.Warn("grpc readiness check failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop переводит health в NOT_SERVING и останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
