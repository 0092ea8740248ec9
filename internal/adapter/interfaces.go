// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

// Package adapter provides a typed HTTP client for the account service.
//
// The primary abstraction is [AccountClient], which decouples callers from
// the wire format of the REST API. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrUnauthorized]
// for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/langlens/account-service/models"
)

// AccountClient defines typed communication with the account service.
// Implementations are responsible for serialisation, bearer-token management,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type AccountClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and stores the returned bearer token.
	Register(ctx context.Context, name, email, password string) (models.AuthResponse, error)

	// Login authenticates with email and password and stores the returned
	// bearer token.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// ForgotPassword asks the server to email a one-time reset code.
	ForgotPassword(ctx context.Context, email string) error

	// VerifyOTP checks a pending reset code without consuming it.
	VerifyOTP(ctx context.Context, email, otp string) error

	// ResetPassword completes the reset flow with the emailed code.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error

	// ChangePassword replaces the password of the authenticated account.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// ChangeEmail replaces the email of the authenticated account.
	ChangeEmail(ctx context.Context, newEmail, password string) error

	// DeleteAccount permanently removes the authenticated account and clears
	// the stored token.
	DeleteAccount(ctx context.Context) error
}
