package models

import "time"

// User represents a registered account. It is the only persistent entity of
// the service; every operation reads or mutates exactly one User row.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the store at creation, is immutable, and is used
	// as the subject of every issued bearer token.
	UserID int64 `json:"-"`

	// Name is the display name of the user. Free text, required.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// Uniqueness is enforced by the store's constraint, which is the
	// source of truth when concurrent writes race.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// ResetOTP is the pending 6-digit password-reset code.
	// Nil unless a reset flow is in progress. Always set and cleared
	// together with ResetOTPExpiresAt.
	ResetOTP *string `json:"-"`

	// ResetOTPExpiresAt bounds the validity of ResetOTP: the code is
	// accepted only strictly before this instant.
	ResetOTPExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
