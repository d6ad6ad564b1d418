// Package hub implements the live subscription registry used by the message
// relay.
//
// A [Hub] keeps, per room, the set of currently connected subscribers and
// pushes every published batch to each of them. Delivery is fire-and-forget:
// a subscriber whose buffer is full misses the batch and catches up through
// the backlog endpoint.
//
// When a [Broker] is configured, published batches are also forwarded to the
// other server instances, whose [RedisBridge] hands them to their local hub.
package hub

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/google/uuid"
)

// Broker forwards a batch to other server instances.
type Broker interface {
	Publish(ctx context.Context, roomID int64, payload []byte) error
}

// Hub is the process-wide registry of live subscribers keyed by room id.
//
// The registry lock is only held to add, remove or snapshot subscribers and
// never while a stream is being written.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[*Subscriber]struct{}

	buffer int
	broker Broker
	logger *logger.Logger
}

// Subscriber is one open stream of one user on one room.
type Subscriber struct {
	ID     string
	RoomID int64
	UserID int64

	messages chan []byte
	done     chan struct{}
	once     sync.Once
}

// Messages yields the batches published to the room while subscribed.
func (s *Subscriber) Messages() <-chan []byte {
	return s.messages
}

// Done is closed when the subscriber is removed from the hub.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.done) })
}

// New builds a hub whose subscribers buffer up to buffer batches.
func New(buffer int, log *logger.Logger) *Hub {
	if buffer < 0 {
		buffer = 0
	}
	return &Hub{
		rooms:  make(map[int64]map[*Subscriber]struct{}),
		buffer: buffer,
		logger: log,
	}
}

// SetBroker enables cross-instance fan-out.
func (h *Hub) SetBroker(broker Broker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broker = broker
}

// Subscribe registers a new stream of userID on roomID.
func (h *Hub) Subscribe(roomID, userID int64) *Subscriber {
	sub := &Subscriber{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		UserID:   userID,
		messages: make(chan []byte, h.buffer),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[*Subscriber]struct{})
		h.rooms[roomID] = room
	}
	room[sub] = struct{}{}
	count := len(room)
	h.mu.Unlock()

	h.logger.Debug().Str("func", "*Hub.Subscribe").
		Int64("room_id", roomID).Int64("user_id", userID).Str("subscriber_id", sub.ID).
		Int("subscribers", count).Msg("subscriber added")

	return sub
}

// Unsubscribe removes sub from the hub. It is safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	if room, ok := h.rooms[sub.RoomID]; ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, sub.RoomID)
		}
	}
	h.mu.Unlock()

	sub.close()

	h.logger.Debug().Str("func", "*Hub.Unsubscribe").
		Int64("room_id", sub.RoomID).Str("subscriber_id", sub.ID).Msg("subscriber removed")
}

// Publish delivers payload to the local subscribers of roomID and forwards
// it to the broker when one is set. Broker failures are logged only.
func (h *Hub) Publish(ctx context.Context, roomID int64, payload []byte) int {
	delivered := h.Deliver(roomID, payload)

	h.mu.RLock()
	broker := h.broker
	h.mu.RUnlock()

	if broker != nil {
		if err := broker.Publish(ctx, roomID, payload); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*Hub.Publish").Int64("room_id", roomID).Msg("failed to forward batch to broker")
		}
	}

	return delivered
}

// Deliver pushes payload to the local subscribers of roomID only and
// returns how many received it.
func (h *Hub) Deliver(roomID int64, payload []byte) int {
	h.mu.RLock()
	subscribers := make([]*Subscriber, 0, len(h.rooms[roomID]))
	for sub := range h.rooms[roomID] {
		subscribers = append(subscribers, sub)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range subscribers {
		select {
		case <-sub.done:
		case sub.messages <- payload:
			delivered++
		default:
			h.logger.Warn().Str("func", "*Hub.Deliver").
				Int64("room_id", roomID).Str("subscriber_id", sub.ID).Msg("subscriber buffer full, batch dropped")
		}
	}

	return delivered
}

// Subscribers returns the number of open streams on roomID.
func (h *Hub) Subscribers(roomID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// Close removes every subscriber, ending all open streams.
func (h *Hub) Close() {
	h.mu.Lock()
	rooms := h.rooms
	h.rooms = make(map[int64]map[*Subscriber]struct{})
	h.mu.Unlock()

	for _, room := range rooms {
		for sub := range room {
			sub.close()
		}
	}
}
