package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/internal/validators"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// userService manages the profile of the authenticated user.
type userService struct {
	userRepository store.UserRepository
	audit          AuditService
	validator      validators.Validator

	bcryptCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, audit AuditService, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		audit:          audit,
		validator:      validators.NewRequestValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// UpdateProfile applies a partial profile update. Changing the password
// requires the current one; the new password is stored as a bcrypt verifier.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, request models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Int64("user_id", userID).Msg("invalid profile update")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	update := request.UserUpdate
	update.UserID = userID

	if update.Password != nil {
		if err := u.checkPassword(ctx, userID, request.CurrentPassword); err != nil {
			return models.User{}, err
		}

		hash, err := utils.HashPassword(*update.Password, u.bcryptCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateProfile").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.PasswordHash = &hash
	}

	user, err := u.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Int64("user_id", userID).Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}

	return user, nil
}

// DeleteAccount removes the account after confirming the password. Rooms it
// administered become adminless and its messages lose their author.
func (u *userService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, models.DeleteAccountRequest{Password: password}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := u.checkPassword(ctx, userID, password); err != nil {
		return err
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteAccount").Int64("user_id", userID).Msg("error deleting account")
		return fmt.Errorf("error deleting account: %w", err)
	}

	u.audit.Record(ctx, models.EventUserDeleted, map[string]any{"userId": userID})
	return nil
}

func (u *userService) GetPublicKey(ctx context.Context, userID int64) (models.PublicKeyResponse, error) {
	if userID <= 0 {
		return models.PublicKeyResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetPublicKey").Int64("user_id", userID).Msg("error finding user")
		return models.PublicKeyResponse{}, fmt.Errorf("error finding user: %w", err)
	}

	return models.PublicKeyResponse{UserID: user.UserID, PublicKey: user.PublicKey}, nil
}

func (u *userService) checkPassword(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.checkPassword").Int64("user_id", userID).Msg("error finding user")
		return fmt.Errorf("error finding user: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Warn().Str("func", "*userService.checkPassword").Int64("user_id", userID).Msg("wrong password")
			return ErrWrongPassword
		}
		return fmt.Errorf("error checking password: %w", err)
	}

	return nil
}
