package service

import (
	"context"

	"github.com/langlens/account-service/models"
)

// AuthService covers registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	// Register creates an account from the given identity and plaintext
	// password. The password is hashed before it reaches the store.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Login verifies the credentials and returns the matching account.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed bearer token bound to the user's ID.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a bearer token string and resolves its subject.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResetService covers the email one-time-code password-reset flow.
type ResetService interface {
	// RequestReset stores a fresh OTP for the account and emails it.
	RequestReset(ctx context.Context, email string) error

	// VerifyOTP checks a pending code without consuming it.
	VerifyOTP(ctx context.Context, email, otp string) error

	// CompleteReset re-hashes the password and consumes the code.
	CompleteReset(ctx context.Context, email, otp, newPassword string) error
}

// AccountService covers authenticated account self-service.
type AccountService interface {
	// ChangePassword verifies the old password and stores a hash of the
	// new one.
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error

	// ChangeEmail verifies the password and stores the new email.
	ChangeEmail(ctx context.Context, userID int64, newEmail, password string) error

	// DeleteAccount permanently removes the account record.
	DeleteAccount(ctx context.Context, userID int64) error
}
