package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces the per-room pub/sub channels.
const channelPrefix = "cipher-rooms:room:"

// ErrNilRedisClient is returned when a broker or bridge is built without a client.
var ErrNilRedisClient = errors.New("redis client is nil")

// envelope is what travels through Redis. Origin lets an instance skip the
// batches it published itself, since those were already delivered locally.
// Payload is base64 encoded so remote subscribers get the exact bytes that
// local subscribers get.
type envelope struct {
	Origin  string `json:"origin"`
	RoomID  int64  `json:"roomId"`
	Payload []byte `json:"payload"`
}

func roomChannel(roomID int64) string {
	return channelPrefix + strconv.FormatInt(roomID, 10)
}

// RedisBroker publishes batches to the room channel of every instance.
type RedisBroker struct {
	client     *redis.Client
	instanceID string
}

// NewRedisBroker builds a broker tagging its messages with instanceID.
func NewRedisBroker(client *redis.Client, instanceID string) (*RedisBroker, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	return &RedisBroker{client: client, instanceID: instanceID}, nil
}

// Publish implements [Broker].
func (b *RedisBroker) Publish(ctx context.Context, roomID int64, payload []byte) error {
	message, err := json.Marshal(envelope{Origin: b.instanceID, RoomID: roomID, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err = b.client.Publish(ctx, roomChannel(roomID), message).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}

	return nil
}

// RedisBridge receives the batches published by other instances and hands
// them to the local hub.
type RedisBridge struct {
	client     *redis.Client
	hub        *Hub
	instanceID string
	logger     *logger.Logger

	// ready is closed once the pattern subscription is confirmed.
	ready chan struct{}
}

// NewRedisBridge builds a bridge feeding h.
func NewRedisBridge(client *redis.Client, h *Hub, instanceID string, log *logger.Logger) (*RedisBridge, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	return &RedisBridge{
		client:     client,
		hub:        h,
		instanceID: instanceID,
		logger:     log.WithRole("redis-bridge"),
		ready:      make(chan struct{}),
	}, nil
}

// Ready is closed once the bridge is subscribed.
func (b *RedisBridge) Ready() <-chan struct{} {
	return b.ready
}

// Run subscribes to every room channel and delivers incoming batches until
// ctx is cancelled.
func (b *RedisBridge) Run(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	// wait for the subscription confirmation so no batch is missed after Ready
	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("redis subscribe: %w", err)
	}
	close(b.ready)
	b.logger.Info().Str("func", "*RedisBridge.Run").Msg("redis bridge subscribed")

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Str("func", "*RedisBridge.Run").Msg("redis bridge stopped")
			return nil
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			b.handle(message)
		}
	}
}

func (b *RedisBridge) handle(message *redis.Message) {
	var env envelope
	if err := json.Unmarshal([]byte(message.Payload), &env); err != nil {
		b.logger.Err(err).Str("func", "*RedisBridge.handle").Str("channel", message.Channel).Msg("malformed envelope")
		return
	}

	if env.Origin == b.instanceID {
		return
	}

	if !strings.HasSuffix(message.Channel, ":"+strconv.FormatInt(env.RoomID, 10)) {
		b.logger.Warn().Str("func", "*RedisBridge.handle").Str("channel", message.Channel).Int64("room_id", env.RoomID).Msg("room id does not match channel")
		return
	}

	b.hub.Deliver(env.RoomID, env.Payload)
}
