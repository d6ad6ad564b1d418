package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLogin          = errors.New("login must be 3-64 characters without spaces")
	ErrInvalidPassword       = errors.New("password must be 6-72 bytes long")
	ErrInvalidPublicKey      = errors.New("public key must be base64 encoded")
	ErrInvalidName           = errors.New("name must be 1-128 characters long")
	ErrInvalidSettings       = errors.New("settings must be a JSON object")
	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrInvalidRoomID         = errors.New("invalid room ID")
	ErrEmptyMessages         = errors.New("messages list cannot be empty")
	ErrTooManyMessages       = errors.New("too many messages in one batch")
	ErrInvalidMessageType    = errors.New("message type is required")
	ErrEmptyMessageData      = errors.New("message data is required")
	ErrEmptyEncryptedPayload = errors.New("encrypted payload is required")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
	ErrCurrentPasswordNeeded = errors.New("current password is required to change the password")
)
