// Package config loads, merges, and validates the service configuration.
//
// Values are gathered from environment variables, command-line flags, and
// an optional JSON file, merged in that order
// (the first source to set a field wins), padded with defaults, and
// validated before the application starts serving.
package config
