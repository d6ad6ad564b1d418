package hub

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func startBridge(t *testing.T, client *redis.Client, h *Hub, instanceID string) {
	t.Helper()
	bridge, err := NewRedisBridge(client, h, instanceID, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bridge.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("bridge did not stop")
		}
	})

	select {
	case <-bridge.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not subscribe")
	}
}

func TestRedisBridge_DeliversBatchesOfOtherInstances(t *testing.T) {
	client := newTestRedis(t)

	// instance B receives what instance A publishes
	hubA := New(4, logger.Nop())
	hubB := New(4, logger.Nop())
	startBridge(t, client, hubB, "instance-b")

	brokerA, err := NewRedisBroker(client, "instance-a")
	require.NoError(t, err)
	hubA.SetBroker(brokerA)

	subB := hubB.Subscribe(3, 1)
	hubA.Publish(context.Background(), 3, []byte(`{"messages":[]}`))

	assert.JSONEq(t, `{"messages":[]}`, string(receive(t, subB)))
}

func TestRedisBridge_KeepsPayloadBytes(t *testing.T) {
	client := newTestRedis(t)

	hubA := New(4, logger.Nop())
	hubB := New(4, logger.Nop())
	startBridge(t, client, hubB, "instance-b")

	brokerA, err := NewRedisBroker(client, "instance-a")
	require.NoError(t, err)
	hubA.SetBroker(brokerA)

	subB := hubB.Subscribe(3, 1)
	payload := []byte("{ \"roomId\": 3,\n  \"messages\": [ ] }")
	hubA.Publish(context.Background(), 3, payload)

	assert.Equal(t, string(payload), string(receive(t, subB)))
}

func TestRedisBridge_SkipsOwnBatches(t *testing.T) {
	client := newTestRedis(t)

	h := New(4, logger.Nop())
	startBridge(t, client, h, "instance-a")

	broker, err := NewRedisBroker(client, "instance-a")
	require.NoError(t, err)
	h.SetBroker(broker)

	sub := h.Subscribe(3, 1)
	h.Publish(context.Background(), 3, []byte(`"once"`))

	assert.Equal(t, `"once"`, string(receive(t, sub)))
	select {
	case msg := <-sub.Messages():
		t.Fatalf("batch delivered twice: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRedisBridge_IgnoresMalformedEnvelope(t *testing.T) {
	client := newTestRedis(t)

	h := New(4, logger.Nop())
	startBridge(t, client, h, "instance-b")
	sub := h.Subscribe(3, 1)

	require.NoError(t, client.Publish(context.Background(), roomChannel(3), "not json").Err())
	require.NoError(t, client.Publish(context.Background(), roomChannel(3), `{"origin":"x","roomId":4,"payload":1}`).Err())

	select {
	case msg := <-sub.Messages():
		t.Fatalf("unexpected delivery: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewRedisBroker_NilClient(t *testing.T) {
	_, err := NewRedisBroker(nil, "x")
	require.ErrorIs(t, err, ErrNilRedisClient)

	_, err = NewRedisBridge(nil, New(1, logger.Nop()), "x", logger.Nop())
	require.ErrorIs(t, err, ErrNilRedisClient)
}
