package validators

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-cipher-rooms/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldLogin targets the unique user login.
	FieldLogin = "login"

	// FieldPassword targets a plaintext password (user or room).
	FieldPassword = "password"

	// FieldPublicKey targets the base64 public key of a user.
	FieldPublicKey = "public_key"

	// FieldName targets a display name.
	FieldName = "name"

	// FieldSettings targets a free-form JSON settings document.
	FieldSettings = "settings"

	// FieldUserID targets a referenced user id.
	FieldUserID = "user_id"

	// FieldRoomID targets a referenced room id.
	FieldRoomID = "room_id"

	// FieldMessages targets the entries of a send batch.
	FieldMessages = "messages"

	// FieldEncryptedPayload targets an opaque ciphertext carried by the
	// access request protocol (encrypted password or encrypted room key).
	FieldEncryptedPayload = "encrypted_payload"
)

// Length limits enforced by [RequestValidator].
const (
	minLoginLength    = 3
	maxLoginLength    = 64
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
	maxNameLength     = 128

	// MaxMessagesPerBatch caps the entries of one send request.
	MaxMessagesPerBatch = 1000
)

// RequestValidator implements [Validator] for every request body accepted by
// the HTTP API.
type RequestValidator struct{}

// NewRequestValidator constructs a [RequestValidator] and returns it as a
// [Validator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Optional fields restrict validation to the named
// subset; when omitted, a default set of fields is validated.
//
// Returns [ErrUnsupportedType] for unknown types and [ErrUnknownField] for a
// field name the type does not have.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	case models.ProfileUpdateRequest:
		return v.validateProfileUpdate(ctx, value)
	case *models.ProfileUpdateRequest:
		return v.validateProfileUpdate(ctx, *value)
	case models.CreateRoomRequest:
		return v.validateCreateRoom(ctx, value)
	case *models.CreateRoomRequest:
		return v.validateCreateRoom(ctx, *value)
	case models.RoomUpdate:
		return v.validateRoomUpdate(ctx, value)
	case *models.RoomUpdate:
		return v.validateRoomUpdate(ctx, *value)
	case models.SendMessagesRequest:
		return v.validateSendMessages(ctx, value, fields...)
	case *models.SendMessagesRequest:
		return v.validateSendMessages(ctx, *value, fields...)
	case models.RoomMessagesRequest:
		return validateID(value.RoomID, ErrInvalidRoomID)
	case *models.RoomMessagesRequest:
		return validateID(value.RoomID, ErrInvalidRoomID)
	case models.AskForAccessRequest:
		return validateID(value.RoomID, ErrInvalidRoomID)
	case *models.AskForAccessRequest:
		return validateID(value.RoomID, ErrInvalidRoomID)
	case models.MemberRequest:
		return validateID(value.UserID, ErrInvalidUserID)
	case *models.MemberRequest:
		return validateID(value.UserID, ErrInvalidUserID)
	case models.DeclarePasswordCheckRequest:
		return validateID(value.UserID, ErrInvalidUserID)
	case *models.DeclarePasswordCheckRequest:
		return validateID(value.UserID, ErrInvalidUserID)
	case models.SendEncryptedPasswordRequest:
		return validateEncrypted(value.EncryptedPassword)
	case *models.SendEncryptedPasswordRequest:
		return validateEncrypted(value.EncryptedPassword)
	case models.SendRoomKeyRequest:
		return v.validateSendRoomKey(value)
	case *models.SendRoomKeyRequest:
		return v.validateSendRoomKey(*value)
	case models.RespondRequest, *models.RespondRequest:
		return nil
	case models.DeleteAccountRequest:
		return validatePresent(value.Password)
	case *models.DeleteAccountRequest:
		return validatePresent(value.Password)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldPublicKey, FieldSettings}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(user.Login); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(user.Password); err != nil {
				return err
			}
		case FieldPublicKey:
			if user.PublicKey != "" {
				if err := validatePublicKey(user.PublicKey); err != nil {
					return err
				}
			}
		case FieldName:
			if utf8.RuneCountInString(user.Name) > maxNameLength {
				return ErrInvalidName
			}
		case FieldSettings:
			if err := validateSettings(user.Settings); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateProfileUpdate(_ context.Context, request models.ProfileUpdateRequest) error {
	update := request.UserUpdate
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil && utf8.RuneCountInString(*update.Name) > maxNameLength {
		return ErrInvalidName
	}
	if update.PublicKey != nil {
		if err := validatePublicKey(*update.PublicKey); err != nil {
			return err
		}
	}
	if update.Settings != nil {
		if err := validateSettings(*update.Settings); err != nil {
			return err
		}
	}
	if update.Password != nil {
		if err := validatePassword(*update.Password); err != nil {
			return err
		}
		if request.CurrentPassword == "" {
			return ErrCurrentPasswordNeeded
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateRoom(_ context.Context, request models.CreateRoomRequest) error {
	if err := validateRoomName(request.Name); err != nil {
		return err
	}
	if request.Password != "" {
		if err := validatePassword(request.Password); err != nil {
			return err
		}
	}
	return validateSettings(request.Settings)
}

func (v *RequestValidator) validateRoomUpdate(_ context.Context, update models.RoomUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil {
		if err := validateRoomName(*update.Name); err != nil {
			return err
		}
	}
	// an empty password removes it
	if update.Password != nil && *update.Password != "" {
		if err := validatePassword(*update.Password); err != nil {
			return err
		}
	}
	if update.Settings != nil {
		return validateSettings(*update.Settings)
	}
	return nil
}

func (v *RequestValidator) validateSendMessages(_ context.Context, request models.SendMessagesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomID, FieldMessages}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomID:
			if err := validateID(request.RoomID, ErrInvalidRoomID); err != nil {
				return err
			}
		case FieldMessages:
			if len(request.Messages) == 0 {
				return ErrEmptyMessages
			}
			if len(request.Messages) > MaxMessagesPerBatch {
				return ErrTooManyMessages
			}
			for i, entry := range request.Messages {
				if strings.TrimSpace(entry.Type) == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidMessageType)
				}
				if data := bytes.TrimSpace(entry.Data); len(data) == 0 || bytes.Equal(data, []byte("null")) {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyMessageData)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSendRoomKey(request models.SendRoomKeyRequest) error {
	if err := validateID(request.UserID, ErrInvalidUserID); err != nil {
		return err
	}
	return validateEncrypted(request.EncryptedRoomKey)
}

func validateLogin(login string) error {
	n := utf8.RuneCountInString(login)
	if n < minLoginLength || n > maxLoginLength {
		return ErrInvalidLogin
	}
	if strings.IndexFunc(login, unicode.IsSpace) >= 0 {
		return ErrInvalidLogin
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

func validatePresent(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	return nil
}

func validatePublicKey(key string) error {
	if key == "" {
		return ErrInvalidPublicKey
	}
	if _, err := base64.StdEncoding.DecodeString(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return nil
}

func validateRoomName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 || n > maxNameLength {
		return ErrInvalidName
	}
	return nil
}

func validateSettings(settings []byte) error {
	trimmed := bytes.TrimSpace(settings)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '{' {
		return ErrInvalidSettings
	}
	return nil
}

func validateID(id int64, err error) error {
	if id <= 0 {
		return err
	}
	return nil
}

func validateEncrypted(payload string) error {
	if strings.TrimSpace(payload) == "" {
		return ErrEmptyEncryptedPayload
	}
	return nil
}
