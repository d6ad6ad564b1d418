package handler

import (
	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/handler/grpc"
	"github.com/MKhiriev/go-cipher-rooms/internal/handler/http"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.Server: the REST
// API when an HTTP address is set, the gRPC health service when a gRPC
// address is set.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
