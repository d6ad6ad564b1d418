package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/gorilla/websocket"
)

const (
	defaultSSERetry = 3 * time.Second

	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsReadLimit  = 512

	defaultSSEKeepAlive = 30 * time.Second

	streamTokenParam = "token"
)

// Handler serves the REST API and the live message streams on top of
// [service.Services].
type Handler struct {
	services *service.Services

	// requestTimeout bounds non-streaming requests; zero disables it.
	requestTimeout time.Duration
	// sseRetry is the reconnect hint sent first on every event stream.
	sseRetry time.Duration
	// sseKeepAlive is the interval of comment lines that keep idle streams
	// open through proxies.
	sseKeepAlive time.Duration

	upgrader websocket.Upgrader
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	sseRetry := cfg.Hub.SSERetry
	if sseRetry <= 0 {
		sseRetry = defaultSSERetry
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		sseRetry:       sseRetry,
		sseKeepAlive:   defaultSSEKeepAlive,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// stream clients authenticate with a token, not with cookies
			CheckOrigin: func(*http.Request) bool { return true },
		},
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
