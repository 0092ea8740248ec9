package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/mail"
	"github.com/langlens/account-service/internal/store"
	"github.com/langlens/account-service/internal/utils"
	"github.com/langlens/account-service/models"
)

// otpTTL is how long a password-reset code stays valid after issuance.
const otpTTL = 10 * time.Minute

const (
	resetMailSubject = "Your password reset code"
	resetMailBody    = "Your one-time password reset code is %s. It expires in 10 minutes. If you did not request a reset, ignore this message."
)

// resetService is the concrete implementation of ResetService. It owns the
// forgot-password flow: issuing one-time codes, verifying them, and
// completing the reset.
type resetService struct {
	userRepository store.UserRepository
	sender         mail.Sender
	logger         *logger.Logger

	// now is the clock source; overridable in tests.
	now func() time.Time
}

// NewResetService constructs a ResetService wired to the given repository
// and outbound mail sender.
func NewResetService(userRepository store.UserRepository, sender mail.Sender, logger *logger.Logger) ResetService {
	return &resetService{
		userRepository: userRepository,
		sender:         sender,
		logger:         logger,
		now:            time.Now,
	}
}

// RequestReset generates a 6-digit code, stores it with a 10-minute expiry,
// and emails it to the account's address. A pending code from an earlier
// request is overwritten; last write wins.
//
// The code never appears in the return value or in logs.
//
// Returns:
//   - ErrInvalidDataProvided if email is empty.
//   - store.ErrUserNotFound if no account matches the email.
//   - A wrapped error if the store write or the mail dispatch fails.
func (s *resetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	otp := utils.GenerateOTP()
	expiresAt := s.now().Add(otpTTL)

	if err = s.userRepository.SetResetOTP(ctx, user.UserID, otp, expiresAt); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing reset code failed")
		return fmt.Errorf("storing reset code failed: %w", err)
	}

	if err = s.sender.Send(ctx, user.Email, resetMailSubject, fmt.Sprintf(resetMailBody, otp)); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("sending reset code failed")
		return fmt.Errorf("sending reset code failed: %w", err)
	}

	log.Info().Int64("id", user.UserID).Time("expires_at", expiresAt).Msg("reset code issued")
	return nil
}

// VerifyOTP checks that the account has a pending, unexpired code equal to
// otp. The check is read-only: the code stays valid for a subsequent
// CompleteReset.
//
// Returns ErrInvalidOrExpiredOTP on any mismatch (unknown email included).
func (s *resetService) VerifyOTP(ctx context.Context, email, otp string) error {
	_, err := s.matchOTP(ctx, email, otp)
	return err
}

// CompleteReset verifies the pending code, overwrites the password hash
// with a fresh bcrypt hash of newPassword, and clears the code so it cannot
// be replayed.
//
// Returns:
//   - ErrInvalidOrExpiredOTP on any code mismatch.
//   - ErrInvalidDataProvided if newPassword is empty.
func (s *resetService) CompleteReset(ctx context.Context, email, otp, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := s.matchOTP(ctx, email, otp)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = s.userRepository.ResetPassword(ctx, user.UserID, passwordHash); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password reset write failed")
		return fmt.Errorf("password reset write failed: %w", err)
	}

	log.Info().Int64("id", user.UserID).Msg("password reset completed")
	return nil
}

// matchOTP resolves the account and checks the pending code: it must exist,
// equal otp byte-for-byte, and expire strictly after the current instant.
// Every failure collapses into ErrInvalidOrExpiredOTP so callers cannot
// probe which condition broke.
func (s *resetService) matchOTP(ctx context.Context, email, otp string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || otp == "" {
		return models.User{}, ErrInvalidOrExpiredOTP
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidOrExpiredOTP
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.ResetOTP == nil || user.ResetOTPExpiresAt == nil {
		return models.User{}, ErrInvalidOrExpiredOTP
	}

	if *user.ResetOTP != otp || !s.now().Before(*user.ResetOTPExpiresAt) {
		return models.User{}, ErrInvalidOrExpiredOTP
	}

	return user, nil
}
