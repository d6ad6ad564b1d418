package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/validators"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// messageService appends batches to the durable log and fans them out
// through the hub.
type messageService struct {
	messageRepository    store.MessageRepository
	membershipRepository store.MembershipRepository

	hub       *hub.Hub
	validator validators.Validator

	// backlogLimit caps RequestLast.
	backlogLimit int

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, membershipRepository store.MembershipRepository, h *hub.Hub, cfg config.App, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository:    messageRepository,
		membershipRepository: membershipRepository,
		hub:                  h,
		validator:            validators.NewRequestValidator(),
		backlogLimit:         cfg.BacklogLimit,
		logger:               logger,
	}
}

// Send appends the batch and then publishes the envelope exactly as the
// client sent it. Nothing is appended or published for a non-member.
func (m *messageService) Send(ctx context.Context, userID int64, request models.SendMessagesRequest) (models.SendMessagesResponse, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "*messageService.Send").Int64("room_id", request.RoomID).Msg("invalid message batch")
		return models.SendMessagesResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := ensureMember(ctx, m.membershipRepository, request.RoomID, userID); err != nil {
		return models.SendMessagesResponse{}, err
	}

	ids, err := m.messageRepository.AppendMessages(ctx, request.RoomID, userID, request.Messages)
	if err != nil {
		log.Err(err).Str("func", "*messageService.Send").Int64("room_id", request.RoomID).Int64("user_id", userID).Msg("error appending messages")
		return models.SendMessagesResponse{}, fmt.Errorf("error appending messages: %w", err)
	}

	envelope := request.Envelope
	if len(envelope) == 0 {
		if envelope, err = json.Marshal(request); err != nil {
			// the batch is stored; subscribers will catch up from the backlog
			log.Err(err).Str("func", "*messageService.Send").Msg("error encoding envelope")
			return models.SendMessagesResponse{MessageIDs: ids}, nil
		}
	}

	delivered := m.hub.Publish(ctx, request.RoomID, envelope)
	log.Debug().Int64("room_id", request.RoomID).Int("messages", len(ids)).Int("delivered", delivered).Msg("messages relayed")

	return models.SendMessagesResponse{MessageIDs: ids}, nil
}

// RequestLast returns the most recent messages of the room, oldest first.
func (m *messageService) RequestLast(ctx context.Context, userID int64, request models.RoomMessagesRequest) ([]models.Message, error) {
	if err := m.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := ensureMember(ctx, m.membershipRepository, request.RoomID, userID); err != nil {
		return nil, err
	}

	messages, err := m.messageRepository.LastMessages(ctx, request.RoomID, m.backlogLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.RequestLast").Int64("room_id", request.RoomID).Msg("error loading backlog")
		return nil, fmt.Errorf("error loading backlog: %w", err)
	}
	return messages, nil
}

// AckLast accepts a backlog receipt. No read cursor is kept yet.
func (m *messageService) AckLast(ctx context.Context, userID int64, request models.RoomMessagesRequest) error {
	if err := m.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := ensureMember(ctx, m.membershipRepository, request.RoomID, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Int64("room_id", request.RoomID).
		Int64("user_id", userID).
		Int64("last_message_id", request.LastMessageID).
		Msg("backlog acknowledged")
	return nil
}

// Subscribe checks membership once; a later removal does not close the
// subscription.
func (m *messageService) Subscribe(ctx context.Context, userID, roomID int64) (*hub.Subscriber, error) {
	if err := m.validator.Validate(ctx, models.RoomMessagesRequest{RoomID: roomID}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := ensureMember(ctx, m.membershipRepository, roomID, userID); err != nil {
		return nil, err
	}

	sub := m.hub.Subscribe(roomID, userID)
	logger.FromContext(ctx).Info().Int64("room_id", roomID).Int64("user_id", userID).Str("subscriber", sub.ID).Msg("subscriber registered")
	return sub, nil
}

func (m *messageService) Unsubscribe(subscriber *hub.Subscriber) {
	m.hub.Unsubscribe(subscriber)
}
