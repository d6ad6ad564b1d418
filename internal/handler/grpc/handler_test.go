package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// appInfo is a fake service.AppInfoService with a switchable health error.
type appInfo struct {
	healthErr atomic.Value
}

func (a *appInfo) GetAppVersion(context.Context) string { return "test" }

func (a *appInfo) Health(context.Context) error {
	if err, ok := a.healthErr.Load().(error); ok {
		return err
	}
	return nil
}

func newTestHandler(info *appInfo) *Handler {
	h := NewHandler(&service.Services{AppInfoService: info}, logger.Nop())
	h.checkInterval = 10 * time.Millisecond
	return h
}

func servingStatus(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h := newTestHandler(&appInfo{})

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, h, ServiceName))
}

func TestRun_FollowsDatabaseHealth(t *testing.T) {
	info := &appInfo{}
	h := newTestHandler(info)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	require.Eventually(t, func() bool {
		return servingStatus(t, h, ServiceName) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	info.healthErr.Store(errors.New("database is down"))
	require.Eventually(t, func() bool {
		return servingStatus(t, h, "") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRegister_ServesHealthOverGRPC(t *testing.T) {
	h := newTestHandler(&appInfo{})
	h.check(context.Background())

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	h.Register(server)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
