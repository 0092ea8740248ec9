package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/store"
	"github.com/langlens/account-service/internal/utils"
)

// accountService is the concrete implementation of AccountService. Every
// operation assumes the caller's identity has already been established by
// the authentication middleware; this layer re-resolves the account and
// verifies the supplied password where the operation demands one.
type accountService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAccountService constructs an AccountService over the given repository.
func NewAccountService(userRepository store.UserRepository, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ChangePassword verifies oldPassword against the stored hash and, on
// success, overwrites the hash with a fresh bcrypt hash of newPassword.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - store.ErrUserNotFound if the account no longer exists.
//   - ErrWrongPassword if oldPassword does not match.
func (a *accountService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if oldPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, oldPassword) {
		log.Warn().Int64("id", userID).Msg("wrong old password")
		return ErrWrongPassword
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// ChangeEmail verifies the account password and overwrites the stored email.
//
// Returns:
//   - ErrInvalidDataProvided if either field is empty.
//   - store.ErrUserNotFound if the account no longer exists.
//   - ErrWrongPassword if password does not match.
//   - store.ErrEmailAlreadyExists if newEmail belongs to another account.
func (a *accountService) ChangeEmail(ctx context.Context, userID int64, newEmail, password string) error {
	log := logger.FromContext(ctx)

	if newEmail == "" || password == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		log.Warn().Int64("id", userID).Msg("wrong password")
		return ErrWrongPassword
	}

	if err = a.userRepository.UpdateEmail(ctx, userID, newEmail); err != nil {
		log.Err(err).Int64("id", userID).Msg("email update failed")
		if errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("email update failed: %w", err)
	}

	return nil
}

// DeleteAccount permanently removes the account record. There is no soft
// delete; tokens already issued stay valid until their own expiry but every
// authenticated operation after deletion resolves to store.ErrUserNotFound.
func (a *accountService) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("account deletion failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("account deleted")
	return nil
}
