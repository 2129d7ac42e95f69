// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const healthProbeTimeout = 3 * time.Second

// HealthHandler implements grpc_health_v1.HealthServer. The service is SERVING while the
// ledger node answers chain id requests with the expected chain.
type HealthHandler struct {
	grpc_health_v1.UnimplementedHealthServer

	probe   ChainProbe
	chainID uint64
	logger  *zap.Logger
}

// NewHealthHandler returns a HealthHandler. A zero chainID accepts any chain.
func NewHealthHandler(probe ChainProbe, chainID uint64, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{probe: probe, chainID: chainID, logger: logger.Named("health")}
}

// Check reports server health.
func (h *HealthHandler) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	id, err := h.probe.ChainID(ctx)
	switch {
	case err != nil:
		h.logger.Warn("ledger probe failed", zap.Error(err))
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	case h.chainID != 0 && (!id.IsUint64() || id.Uint64() != h.chainID):
		h.logger.Warn("ledger on unexpected chain", zap.Stringer("chain_id", id), zap.Uint64("want", h.chainID))
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	return &grpc_health_v1.HealthCheckResponse{Status: status}, nil
}
