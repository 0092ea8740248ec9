// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Mail.Host == "" || cfg.Mail.Port <= 0 || cfg.Mail.From == "" {
		return ErrInvalidMailConfigs
	}

	if cfg.Workers.OTPCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
