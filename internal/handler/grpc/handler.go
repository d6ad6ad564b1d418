// Package grpc exposes the standard gRPC health service of the chat server.
//
// The serving status follows database reachability: load balancers stop
// routing to an instance that lost its database.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health entry of the chat API. The empty name reports
// the server as a whole and carries the same status.
const ServiceName = "cipherrooms.ChatServer"

const (
	defaultCheckInterval = 10 * time.Second
	checkTimeout         = 3 * time.Second
)

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] whose status is refreshed from
// [service.AppInfoService.Health] while [Handler.Run] is active.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health        *health.Server
	checkInterval time.Duration

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both entries report NOT_SERVING until
// the first check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services:      services,
		health:        health.NewServer(),
		checkInterval: defaultCheckInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register adds the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Run refreshes the serving status every check interval until ctx is
// cancelled, then marks the server as shutting down.
func (h *Handler) Run(ctx context.Context) error {
	h.check(ctx)

	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *Handler) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.Health(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.check").Msg("health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
