// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/internal/validators"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// roomService is the concrete implementation of RoomService.
type roomService struct {
	// roomRepository persists rooms and the admin reference.
	roomRepository store.RoomRepository

	// membershipRepository persists the room × user relation.
	membershipRepository store.MembershipRepository

	// audit records room lifecycle events.
	audit AuditService

	validator validators.Validator

	// bcryptCost is the work factor of room password verifiers.
	bcryptCost int

	logger *logger.Logger
}

// NewRoomService constructs a RoomService over the given repositories.
func NewRoomService(roomRepository store.RoomRepository, membershipRepository store.MembershipRepository, audit AuditService, cfg config.App, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepository:       roomRepository,
		membershipRepository: membershipRepository,
		audit:                audit,
		validator:            validators.NewRequestValidator(),
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
	}
}

// CreateRoom creates a room administered by userID, who becomes its only
// member. A room created with a password also gets an accepted access
// request for the creator holding EncryptedRoomKey.
func (s *roomService) CreateRoom(ctx context.Context, userID int64, request models.CreateRoomRequest) (models.Room, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "*roomService.CreateRoom").Int64("user_id", userID).Msg("invalid room data provided")
		return models.Room{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	room := models.Room{
		Name:        request.Name,
		Description: request.Description,
		Avatar:      request.Avatar,
		IsPrivate:   request.IsPrivate,
		IsVisible:   request.IsVisible,
		AdminID:     &userID,
		Settings:    request.Settings,
	}

	if request.Password != "" {
		hash, err := utils.HashPassword(request.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Str("func", "*roomService.CreateRoom").Msg("error hashing room password")
			return models.Room{}, fmt.Errorf("error hashing room password: %w", err)
		}
		room.PasswordHash = hash
		room.HasPassword = true
	}

	created, err := s.roomRepository.CreateRoom(ctx, room, request.EncryptedRoomKey)
	if err != nil {
		log.Err(err).Str("func", "*roomService.CreateRoom").Int64("user_id", userID).Msg("error creating room")
		return models.Room{}, fmt.Errorf("error creating room: %w", err)
	}

	s.audit.Record(ctx, models.EventRoomCreated, map[string]any{"roomId": created.RoomID, "userId": userID})
	return created, nil
}

// GetRoom returns a room visible to userID. Invisible rooms are reported as
// not found to non-members.
func (s *roomService) GetRoom(ctx context.Context, userID, roomID int64) (models.Room, error) {
	room, err := s.roomRepository.GetRoom(ctx, roomID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.GetRoom").Int64("room_id", roomID).Msg("error getting room")
		return models.Room{}, fmt.Errorf("error getting room: %w", err)
	}

	if !room.IsVisible {
		member, err := s.membershipRepository.IsMember(ctx, roomID, userID)
		if err != nil {
			return models.Room{}, fmt.Errorf("error checking membership: %w", err)
		}
		if !member {
			return models.Room{}, store.ErrRoomNotFound
		}
	}

	return room, nil
}

func (s *roomService) ListVisibleRooms(ctx context.Context, userID int64) ([]models.Room, error) {
	rooms, err := s.roomRepository.ListVisibleRooms(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.ListVisibleRooms").Msg("error listing rooms")
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) ListMyRooms(ctx context.Context, userID int64) ([]models.Room, error) {
	rooms, err := s.roomRepository.ListUserRooms(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.ListMyRooms").Int64("user_id", userID).Msg("error listing user rooms")
		return nil, fmt.Errorf("error listing user rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom applies a partial update. Any member may change content fields.
// Password and visibility changes are restricted to the admin, or to any
// member while the room is adminless; the restriction is enforced by the
// same statement that writes the row.
func (s *roomService) UpdateRoom(ctx context.Context, userID int64, update models.RoomUpdate) (models.Room, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("func", "*roomService.UpdateRoom").Int64("room_id", update.RoomID).Msg("invalid room update")
		return models.Room{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := ensureMember(ctx, s.membershipRepository, update.RoomID, userID); err != nil {
		return models.Room{}, err
	}

	var adminGuard *int64
	if update.ChangesSecurity() {
		adminGuard = &userID
	}

	if update.Password != nil {
		hash := ""
		if *update.Password != "" {
			var err error
			hash, err = utils.HashPassword(*update.Password, s.bcryptCost)
			if err != nil {
				log.Err(err).Str("func", "*roomService.UpdateRoom").Msg("error hashing room password")
				return models.Room{}, fmt.Errorf("error hashing room password: %w", err)
			}
		}
		update.PasswordHash = &hash
	}

	room, err := s.roomRepository.UpdateRoom(ctx, update, adminGuard)
	if err != nil {
		log.Err(err).Str("func", "*roomService.UpdateRoom").Int64("room_id", update.RoomID).Int64("user_id", userID).Msg("error updating room")
		return models.Room{}, fmt.Errorf("error updating room: %w", err)
	}

	return room, nil
}

// DeleteRoom deletes the room with its memberships, requests and messages.
// Only the admin may do it.
func (s *roomService) DeleteRoom(ctx context.Context, userID, roomID int64) error {
	if err := s.roomRepository.DeleteRoom(ctx, roomID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.DeleteRoom").Int64("room_id", roomID).Int64("user_id", userID).Msg("error deleting room")
		return fmt.Errorf("error deleting room: %w", err)
	}

	s.audit.Record(ctx, models.EventRoomDeleted, map[string]any{"roomId": roomID, "userId": userID})
	return nil
}

func (s *roomService) ListMembers(ctx context.Context, userID, roomID int64) ([]models.RoomMember, error) {
	if err := ensureMember(ctx, s.membershipRepository, roomID, userID); err != nil {
		return nil, err
	}

	members, err := s.membershipRepository.ListMembers(ctx, roomID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.ListMembers").Int64("room_id", roomID).Msg("error listing members")
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	return members, nil
}

// AddUser makes userID a member without any key exchange. Admin only.
func (s *roomService) AddUser(ctx context.Context, adminID, roomID, userID int64) error {
	if err := validateMemberRequest(ctx, s.validator, userID); err != nil {
		return err
	}
	if err := s.ensureAdmin(ctx, roomID, adminID); err != nil {
		return err
	}

	added, err := s.membershipRepository.AddMember(ctx, roomID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.AddUser").Int64("room_id", roomID).Int64("user_id", userID).Msg("error adding member")
		return fmt.Errorf("error adding member: %w", err)
	}
	if !added {
		return ErrAlreadyInRoom
	}

	return nil
}

// RemoveUser kicks userID out of the room. Admin only.
func (s *roomService) RemoveUser(ctx context.Context, adminID, roomID, userID int64) error {
	if err := validateMemberRequest(ctx, s.validator, userID); err != nil {
		return err
	}
	if err := s.ensureAdmin(ctx, roomID, adminID); err != nil {
		return err
	}

	wasAdmin, err := s.membershipRepository.RemoveMember(ctx, roomID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.RemoveUser").Int64("room_id", roomID).Int64("user_id", userID).Msg("error removing member")
		return fmt.Errorf("error removing member: %w", err)
	}

	s.audit.Record(ctx, models.EventMemberRemoved, map[string]any{"roomId": roomID, "userId": userID, "by": adminID, "wasAdmin": wasAdmin})
	return nil
}

// Leave removes the caller from the room. An admin leaving makes the room
// adminless.
func (s *roomService) Leave(ctx context.Context, userID, roomID int64) error {
	wasAdmin, err := s.membershipRepository.RemoveMember(ctx, roomID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.Leave").Int64("room_id", roomID).Int64("user_id", userID).Msg("error leaving room")
		return fmt.Errorf("error leaving room: %w", err)
	}

	s.audit.Record(ctx, models.EventMemberLeft, map[string]any{"roomId": roomID, "userId": userID, "wasAdmin": wasAdmin})
	return nil
}

// ClaimAdmin makes a member the admin of an adminless room.
func (s *roomService) ClaimAdmin(ctx context.Context, userID, roomID int64) error {
	if err := ensureMember(ctx, s.membershipRepository, roomID, userID); err != nil {
		return err
	}

	if err := s.roomRepository.ClaimAdmin(ctx, roomID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.ClaimAdmin").Int64("room_id", roomID).Int64("user_id", userID).Msg("error claiming admin")
		return fmt.Errorf("error claiming admin: %w", err)
	}

	s.audit.Record(ctx, models.EventAdminClaimed, map[string]any{"roomId": roomID, "userId": userID})
	return nil
}

// ReleaseAdmin lets the current admin give up the role.
func (s *roomService) ReleaseAdmin(ctx context.Context, userID, roomID int64) error {
	if err := s.roomRepository.ReleaseAdmin(ctx, roomID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.ReleaseAdmin").Int64("room_id", roomID).Int64("user_id", userID).Msg("error releasing admin")
		return fmt.Errorf("error releasing admin: %w", err)
	}

	s.audit.Record(ctx, models.EventAdminReleased, map[string]any{"roomId": roomID, "userId": userID})
	return nil
}

// Join adds the caller to a public room. Joining twice is not an error; the
// result reports that the user already was a member.
func (s *roomService) Join(ctx context.Context, userID, roomID int64) (models.JoinResult, error) {
	log := logger.FromContext(ctx)

	room, err := s.roomRepository.GetRoom(ctx, roomID)
	if err != nil {
		log.Err(err).Str("func", "*roomService.Join").Int64("room_id", roomID).Msg("error getting room")
		return models.JoinResult{}, fmt.Errorf("error getting room: %w", err)
	}
	if !room.IsPublic() {
		return models.JoinResult{}, ErrRoomNotPublic
	}

	added, err := s.membershipRepository.AddMember(ctx, roomID, userID)
	if err != nil {
		log.Err(err).Str("func", "*roomService.Join").Int64("room_id", roomID).Int64("user_id", userID).Msg("error joining room")
		return models.JoinResult{}, fmt.Errorf("error joining room: %w", err)
	}

	return models.JoinResult{RoomID: roomID, AlreadyInRoom: !added}, nil
}

func (s *roomService) ensureAdmin(ctx context.Context, roomID, userID int64) error {
	room, err := s.roomRepository.GetRoom(ctx, roomID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.ensureAdmin").Int64("room_id", roomID).Msg("error getting room")
		return fmt.Errorf("error getting room: %w", err)
	}
	if !room.IsAdmin(userID) {
		return ErrNotRoomAdmin
	}
	return nil
}

// ensureMember returns ErrNotRoomMember unless userID belongs to roomID.
func ensureMember(ctx context.Context, memberships store.MembershipRepository, roomID, userID int64) error {
	member, err := memberships.IsMember(ctx, roomID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "service.ensureMember").Int64("room_id", roomID).Int64("user_id", userID).Msg("error checking membership")
		return fmt.Errorf("error checking membership: %w", err)
	}
	if !member {
		return ErrNotRoomMember
	}
	return nil
}

func validateMemberRequest(ctx context.Context, validator validators.Validator, userID int64) error {
	if err := validator.Validate(ctx, models.MemberRequest{UserID: userID}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
