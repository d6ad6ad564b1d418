package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	server *http.Server

	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	if cfg.TLSCertFile == "" || cfg.TLSKeyFile == "" {
		return nil, errMissingTLSFiles
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		certFile: cfg.TLSCertFile,
		keyFile:  cfg.TLSKeyFile,
		logger:   logger,
	}, nil
}

// RunServer serves HTTPS until Shutdown. A certificate that cannot be loaded
// is reported immediately.
func (h *httpServer) RunServer() error {
	err := h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTPS server stopped")
		return fmt.Errorf("https server: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight requests. Live streams end through the
// callbacks registered with onShutdown.
func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTPS server shutdown")
	}
}

func (h *httpServer) onShutdown(f func()) {
	h.server.RegisterOnShutdown(f)
}
