// Package grpc exposes the gateway's model health over the standard gRPC
// health checking protocol.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/oc-serve/internal/logger"
)

// ModelService is the service name whose status follows the model health
// probe. The empty service name reports the same status.
const ModelService = "ocserve.Model"

// Handler is the root gRPC transport handler.
//
// It owns a health server that starts in NOT_SERVING and is flipped by
// SetServing as the model health probe reports.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with both the overall and the model
// service marked NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing records the outcome of a model health probe.
func (h *Handler) SetServing(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.setStatus(status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health shutting down")
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ModelService, status)
}
