package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код/ошибка.
// Health-проверки пишутся на уровне debug, чтобы пробы оркестратора не засоряли лог.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)

		attrs := []any{"method", info.FullMethod, "latency_ms", latency.Milliseconds()}
		if err != nil {
			st, _ := status.FromError(err)
			attrs = append(attrs, "grpc_code", st.Code().String(), "error", st.Message())
			log.Warn("grpc request", attrs...)
			return resp, err
		}
		attrs = append(attrs, "grpc_code", codes.OK.String())
		if info.FullMethod == healthpb.Health_Check_FullMethodName {
			log.Debug("grpc request", attrs...)
			return resp, nil
		}
		log.Info("grpc request", attrs...)
		return resp, nil
	}
}
