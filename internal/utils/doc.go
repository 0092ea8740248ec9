// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// one-time codes, HTTP response writing, and JWT token generation
// and validation.
package utils
