package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/roya-gateway/internal/crypto"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/store"
	"github.com/MKhiriev/roya-gateway/internal/validators"
	"github.com/MKhiriev/roya-gateway/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	logger         *logger.Logger
}

// NewUserService constructs a UserService on top of the user repository.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// GetProfile returns the public record of userID.
func (u *userService) GetProfile(ctx context.Context, userID int64) (models.PublicUser, error) {
	user, err := u.userRepository.FindPublicUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PublicUser{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetProfile").Int64("user_id", userID).Msg("error fetching user")
		return models.PublicUser{}, err
	}

	return user, nil
}

// UpdateUser applies the non-empty fields of req to the user and returns the
// refreshed public record.
//
// A password change happens only when current, new and confirm passwords are
// all given; the current one must verify against the stored hash.
func (u *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	patch := buildUserPatch(req)

	if req.PasswordChangeRequested() {
		if *req.NewPassword != *req.ConfirmPassword {
			return models.PublicUser{}, validators.ErrPasswordMismatch
		}

		if _, err := u.verifyCurrentPassword(ctx, userID, *req.CurrentPassword); err != nil {
			return models.PublicUser{}, err
		}

		hash, err := u.hasher.Hash(*req.NewPassword)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.PublicUser{}, fmt.Errorf("error hashing password: %w", err)
		}
		patch[models.ColumnPasswordHash] = hash
	}

	if len(patch) == 0 {
		return models.PublicUser{}, ErrNoFieldsToUpdate
	}

	if err := u.userRepository.UpdateUser(ctx, userID, patch); err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("error updating user")
		return models.PublicUser{}, err
	}

	return u.GetProfile(ctx, userID)
}

// DeleteUser removes the user after verifying the current password. The
// returned rows are what the remote data API reported as deleted.
func (u *userService) DeleteUser(ctx context.Context, userID int64, req models.DeleteUserRequest) ([]models.PublicUser, error) {
	if _, err := u.verifyCurrentPassword(ctx, userID, req.CurrentPassword); err != nil {
		return nil, err
	}

	deleted, err := u.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return nil, err
	}

	return deleted, nil
}

func (u *userService) verifyCurrentPassword(ctx context.Context, userID int64, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.verifyCurrentPassword").Int64("user_id", userID).Msg("error fetching user")
		return models.User{}, err
	}

	if err = u.hasher.Verify(user.PasswordHash, password); err != nil {
		log.Info().Err(err).Int64("user_id", userID).Msg("current password verification failed")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// buildUserPatch keeps the present, non-empty profile fields of req.
func buildUserPatch(req models.UpdateUserRequest) models.UserPatch {
	patch := models.UserPatch{}

	setIfPresent(patch, models.ColumnFirstName, req.FirstName)
	setIfPresent(patch, models.ColumnLastName, req.LastName)
	setIfPresent(patch, models.ColumnUsername, req.Username)
	setIfPresent(patch, models.ColumnBirthday, req.Birthday)
	setIfPresent(patch, models.ColumnEmail, normalizedEmail(req.Email))
	setIfPresent(patch, models.ColumnPhoneNumber, normalizedPhone(req.PhoneNumber))

	return patch
}

func setIfPresent(patch models.UserPatch, column string, value *string) {
	if value != nil && *value != "" {
		patch[column] = *value
	}
}
