// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// account service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token-signing
	// secret, token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistent user store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the outbound SMTP settings used to deliver one-time
	// password-reset codes.
	Mail Mail `envPrefix:"SMTP_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged into the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m"). Expiry is enforced by the token parser.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the user store.
type DB struct {
	// DSN selects and configures the database backend. A value starting
	// with "postgres://" or "postgresql://" opens a PostgreSQL connection;
	// any other value is treated as a SQLite file path (":memory:" is
	// accepted for throwaway local runs).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mail holds outbound SMTP delivery settings.
type Mail struct {
	// Host is the SMTP relay hostname.
	// Env: SMTP_HOST
	Host string `env:"HOST"`

	// Port is the SMTP relay port.
	// Env: SMTP_PORT
	Port int `env:"PORT"`

	// From is the sender address stamped on every outgoing message.
	// Env: SMTP_FROM
	From string `env:"FROM"`

	// Username and Password enable PLAIN authentication against the relay
	// when both are non-empty; otherwise the connection is unauthenticated.
	// Env: SMTP_USERNAME / SMTP_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// OTPCleanupInterval is how often the cleanup worker clears expired
	// password-reset codes from the store.
	// Env: WORKERS_OTP_CLEANUP_INTERVAL
	OTPCleanupInterval time.Duration `env:"OTP_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still unset after merging are padded with defaults. Returns a fully
// populated *StructuredConfig or an error if any source fails to load or the
// final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
