// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a non-empty
	// token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Client-facing failure messages. The signup/login texts are part of the
// public API contract and must not drift.
const (
	msgEmailExists        = "Email already exists. Please log in."
	msgUserNotFound       = "User not found. Please sign up first."
	msgInvalidCredentials = "Invalid credentials. Try again."
	msgInvalidOrExpired   = "Invalid or expired OTP."
	msgInternalError      = "Internal server error"
)
