package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/procurehq/procurement-tracker/internal/common"
)

// UnaryRequestID tags every call with a request id, propagates it through the
// context for downstream log correlation, and records method latency.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			logger.Warn("grpc.call",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
		} else {
			logger.Info("grpc.call",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return resp, err
	}
}
