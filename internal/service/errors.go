package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidOrExpiredOTP covers every reset-code failure (unknown
	// email, missing code, mismatched code, lapsed expiry) so the
	// response never reveals which part failed.
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
)
