package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNotRoomMember         = errors.New("user is not a member of the room")
	ErrNotRoomAdmin          = errors.New("user is not the admin of the room")
	ErrRoomNotPublic         = errors.New("room cannot be joined directly")
	ErrRoomHasNoPassword     = errors.New("room is not protected by a password")
	ErrAlreadyInRoom         = errors.New("user is already in the room")
	ErrCannotCheckOwnRequest = errors.New("members cannot check their own password")
	ErrRoomKeyRequired       = errors.New("encrypted room key is required to accept a request")
)
