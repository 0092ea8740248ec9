package store

import (
	"context"
	"time"

	"github.com/langlens/account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the data-access contract for the users table. All
// methods are safe for concurrent use; each call maps to a single-record
// read or write and relies on the store's own per-row atomicity.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email
	// uniqueness constraint rejects the insert.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePasswordHash overwrites the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error

	// UpdateEmail overwrites the stored email. Returns ErrEmailAlreadyExists
	// when the new email belongs to another user.
	UpdateEmail(ctx context.Context, userID int64, email string) error

	// SetResetOTP stores a pending password-reset code and its expiry,
	// overwriting any previous pending code (last write wins).
	SetResetOTP(ctx context.Context, userID int64, otp string, expiresAt time.Time) error

	// ResetPassword overwrites the password hash and clears the pending
	// reset code in a single write, making the code one-time use.
	ResetPassword(ctx context.Context, userID int64, passwordHash string) error

	// DeleteUser permanently removes the record or returns ErrUserNotFound.
	DeleteUser(ctx context.Context, userID int64) error

	// ClearExpiredOTPs clears reset codes whose expiry is at or before now
	// and reports how many rows were touched. Hygiene only; per-request
	// expiry checks never depend on it.
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}
