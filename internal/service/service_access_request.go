// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/validators"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// accessRequestService is the concrete implementation of AccessRequestService.
//
// Each transition maps to one conditional write in the repository, so
// concurrent requests against the same (room, user) pair are resolved by the
// database. The service only checks who is allowed to attempt a transition.
type accessRequestService struct {
	accessRequestRepository store.AccessRequestRepository
	roomRepository          store.RoomRepository
	membershipRepository    store.MembershipRepository

	audit     AuditService
	validator validators.Validator

	// lockTimeout is how long a declared password check holds its lock.
	lockTimeout time.Duration

	logger *logger.Logger
}

func NewAccessRequestService(storages *store.Storages, audit AuditService, cfg config.App, logger *logger.Logger) AccessRequestService {
	return &accessRequestService{
		accessRequestRepository: storages.AccessRequestRepository,
		roomRepository:          storages.RoomRepository,
		membershipRepository:    storages.MembershipRepository,
		audit:                   audit,
		validator:               validators.NewRequestValidator(),
		lockTimeout:             cfg.PasswordCheckLockTimeout,
		logger:                  logger,
	}
}

// AskForAccess opens a pending request that the admin resolves with
// RespondToRequest.
func (s *accessRequestService) AskForAccess(ctx context.Context, userID, roomID int64) (models.AccessRequest, error) {
	if err := s.validator.Validate(ctx, models.AskForAccessRequest{RoomID: roomID}); err != nil {
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.getRoom(ctx, roomID); err != nil {
		return models.AccessRequest{}, err
	}

	return s.openRequest(ctx, userID, roomID, models.AccessStatusPending)
}

// RequestJoinByPassword opens a requestJoin row for a password protected
// room. It fails when a row for the pair already exists, whatever its status.
func (s *accessRequestService) RequestJoinByPassword(ctx context.Context, userID, roomID int64) (models.AccessRequest, error) {
	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return models.AccessRequest{}, err
	}
	if !room.HasPassword {
		return models.AccessRequest{}, ErrRoomHasNoPassword
	}

	return s.openRequest(ctx, userID, roomID, models.AccessStatusRequestJoin)
}

// DeclarePasswordCheck takes the verification lock on the joiner's request.
// A lock younger than lockTimeout held by anyone makes it fail with
// store.ErrPasswordCheckLocked.
func (s *accessRequestService) DeclarePasswordCheck(ctx context.Context, checkerID, roomID, userID int64) error {
	if err := s.validator.Validate(ctx, models.DeclarePasswordCheckRequest{UserID: userID}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if checkerID == userID {
		return ErrCannotCheckOwnRequest
	}
	if err := ensureMember(ctx, s.membershipRepository, roomID, checkerID); err != nil {
		return err
	}

	err := s.accessRequestRepository.DeclarePasswordCheck(ctx, roomID, userID, checkerID, s.lockTimeout)
	return s.transitionError(ctx, "*accessRequestService.DeclarePasswordCheck", roomID, userID, err)
}

// ResetPasswordCheck releases the verification lock. Any member may do it.
func (s *accessRequestService) ResetPasswordCheck(ctx context.Context, memberID, roomID, userID int64) error {
	if err := validateMemberRequest(ctx, s.validator, userID); err != nil {
		return err
	}
	if err := ensureMember(ctx, s.membershipRepository, roomID, memberID); err != nil {
		return err
	}

	err := s.accessRequestRepository.ResetPasswordCheck(ctx, roomID, userID)
	return s.transitionError(ctx, "*accessRequestService.ResetPasswordCheck", roomID, userID, err)
}

// SendEncryptedPassword stores the joiner's password proof for the member
// that declared the check.
func (s *accessRequestService) SendEncryptedPassword(ctx context.Context, userID, roomID int64, encryptedPassword string) error {
	if err := s.validator.Validate(ctx, models.SendEncryptedPasswordRequest{EncryptedPassword: encryptedPassword}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err := s.accessRequestRepository.SubmitEncryptedPassword(ctx, roomID, userID, encryptedPassword)
	return s.transitionError(ctx, "*accessRequestService.SendEncryptedPassword", roomID, userID, err)
}

// RejectPassword deletes the request; the joiner has to start over.
func (s *accessRequestService) RejectPassword(ctx context.Context, memberID, roomID, userID int64) error {
	if err := validateMemberRequest(ctx, s.validator, userID); err != nil {
		return err
	}
	if err := ensureMember(ctx, s.membershipRepository, roomID, memberID); err != nil {
		return err
	}

	err := s.accessRequestRepository.RejectPassword(ctx, roomID, userID)
	if err = s.transitionError(ctx, "*accessRequestService.RejectPassword", roomID, userID, err); err != nil {
		return err
	}

	s.audit.Record(ctx, models.EventAccessRejected, map[string]any{"roomId": roomID, "userId": userID, "by": memberID})
	return nil
}

// SendRoomKey delivers the room key encrypted for the joiner and makes the
// joiner a member in the same transaction.
func (s *accessRequestService) SendRoomKey(ctx context.Context, memberID, roomID int64, request models.SendRoomKeyRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := ensureMember(ctx, s.membershipRepository, roomID, memberID); err != nil {
		return err
	}

	err := s.accessRequestRepository.DeliverRoomKey(ctx, roomID, request.UserID, request.EncryptedRoomKey)
	if err = s.transitionError(ctx, "*accessRequestService.SendRoomKey", roomID, request.UserID, err); err != nil {
		return err
	}

	s.audit.Record(ctx, models.EventAccessGranted, map[string]any{"roomId": roomID, "userId": request.UserID, "by": memberID})
	return nil
}

// RequestKeyAgain asks the members to deliver the room key once more.
func (s *accessRequestService) RequestKeyAgain(ctx context.Context, userID, roomID int64) error {
	err := s.accessRequestRepository.RequestKeyAgain(ctx, roomID, userID)
	return s.transitionError(ctx, "*accessRequestService.RequestKeyAgain", roomID, userID, err)
}

// RespondToRequest resolves a pending request. Admin only. Accepting a
// request for a password protected room requires the encrypted room key.
func (s *accessRequestService) RespondToRequest(ctx context.Context, adminID, roomID, userID int64, request models.RespondRequest) error {
	if err := validateMemberRequest(ctx, s.validator, userID); err != nil {
		return err
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if !room.IsAdmin(adminID) {
		return ErrNotRoomAdmin
	}
	if request.Accept && room.HasPassword && request.EncryptedRoomKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrRoomKeyRequired)
	}

	err = s.accessRequestRepository.Respond(ctx, roomID, userID, request.Accept, request.EncryptedRoomKey)
	if err = s.transitionError(ctx, "*accessRequestService.RespondToRequest", roomID, userID, err); err != nil {
		return err
	}

	event := models.EventAccessRejected
	if request.Accept {
		event = models.EventAccessGranted
	}
	s.audit.Record(ctx, event, map[string]any{"roomId": roomID, "userId": userID, "by": adminID})
	return nil
}

// GetMyRequest returns the caller's request for the room. A member without a
// request row gets a synthesized inRoom request.
func (s *accessRequestService) GetMyRequest(ctx context.Context, userID, roomID int64) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	request, err := s.accessRequestRepository.GetRequest(ctx, roomID, userID)
	if err == nil {
		return request, nil
	}
	if !errors.Is(err, store.ErrAccessRequestNotFound) {
		log.Err(err).Str("func", "*accessRequestService.GetMyRequest").Int64("room_id", roomID).Int64("user_id", userID).Msg("error getting access request")
		return models.AccessRequest{}, fmt.Errorf("error getting access request: %w", err)
	}

	member, memberErr := s.membershipRepository.IsMember(ctx, roomID, userID)
	if memberErr != nil {
		log.Err(memberErr).Str("func", "*accessRequestService.GetMyRequest").Msg("error checking membership")
		return models.AccessRequest{}, fmt.Errorf("error checking membership: %w", memberErr)
	}
	if !member {
		return models.AccessRequest{}, err
	}

	return models.AccessRequest{RoomID: roomID, UserID: userID, Status: models.AccessStatusInRoom}, nil
}

func (s *accessRequestService) CancelMyRequest(ctx context.Context, userID, roomID int64) error {
	deleted, err := s.accessRequestRepository.DeleteRequest(ctx, roomID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRequestService.CancelMyRequest").Int64("room_id", roomID).Int64("user_id", userID).Msg("error deleting access request")
		return fmt.Errorf("error deleting access request: %w", err)
	}
	if !deleted {
		return store.ErrAccessRequestNotFound
	}
	return nil
}

// ListRoomRequests lists the room's requests that are still in negotiation.
func (s *accessRequestService) ListRoomRequests(ctx context.Context, memberID, roomID int64) ([]models.AccessRequest, error) {
	if err := ensureMember(ctx, s.membershipRepository, roomID, memberID); err != nil {
		return nil, err
	}

	requests, err := s.accessRequestRepository.ListRoomRequests(ctx, roomID, models.ActiveAccessStatuses)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRequestService.ListRoomRequests").Int64("room_id", roomID).Msg("error listing access requests")
		return nil, fmt.Errorf("error listing access requests: %w", err)
	}
	return requests, nil
}

func (s *accessRequestService) RoomUsersStatus(ctx context.Context, memberID, roomID int64) ([]models.UserRoomStatus, error) {
	if err := ensureMember(ctx, s.membershipRepository, roomID, memberID); err != nil {
		return nil, err
	}

	statuses, err := s.accessRequestRepository.RoomUsersStatus(ctx, roomID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRequestService.RoomUsersStatus").Int64("room_id", roomID).Msg("error listing room users status")
		return nil, fmt.Errorf("error listing room users status: %w", err)
	}
	return statuses, nil
}

func (s *accessRequestService) openRequest(ctx context.Context, userID, roomID int64, status models.AccessStatus) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	member, err := s.membershipRepository.IsMember(ctx, roomID, userID)
	if err != nil {
		log.Err(err).Str("func", "*accessRequestService.openRequest").Msg("error checking membership")
		return models.AccessRequest{}, fmt.Errorf("error checking membership: %w", err)
	}
	if member {
		return models.AccessRequest{}, ErrAlreadyInRoom
	}

	request, err := s.accessRequestRepository.CreateRequest(ctx, roomID, userID, status)
	if err != nil {
		log.Err(err).Str("func", "*accessRequestService.openRequest").
			Int64("room_id", roomID).
			Int64("user_id", userID).
			Str("status", string(status)).
			Msg("error creating access request")
		return models.AccessRequest{}, fmt.Errorf("error creating access request: %w", err)
	}

	return request, nil
}

func (s *accessRequestService) getRoom(ctx context.Context, roomID int64) (models.Room, error) {
	room, err := s.roomRepository.GetRoom(ctx, roomID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRequestService.getRoom").Int64("room_id", roomID).Msg("error getting room")
		return models.Room{}, fmt.Errorf("error getting room: %w", err)
	}
	return room, nil
}

// transitionError logs a failed transition. Lock contention and wrong state
// are expected outcomes and are logged below error level.
func (s *accessRequestService) transitionError(ctx context.Context, fn string, roomID, userID int64, err error) error {
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	switch {
	case errors.Is(err, store.ErrPasswordCheckLocked),
		errors.Is(err, store.ErrInvalidAccessRequestState),
		errors.Is(err, store.ErrAccessRequestNotFound):
		log.Info().Err(err).Str("func", fn).Int64("room_id", roomID).Int64("user_id", userID).Msg("access request transition refused")
	default:
		log.Err(err).Str("func", fn).Int64("room_id", roomID).Int64("user_id", userID).Msg("access request transition failed")
	}

	return fmt.Errorf("access request transition failed: %w", err)
}
