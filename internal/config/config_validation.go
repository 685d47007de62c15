// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Limits.UsernameMinLength < 1 ||
		cfg.Limits.UsernameMaxLength < cfg.Limits.UsernameMinLength ||
		cfg.Limits.PasswordMinLength < 1 {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// IsInsecureTokenSignKey reports whether the effective token signing key is
// the built-in development placeholder. Callers should log a prominent
// warning when this returns true.
func (cfg *StructuredConfig) IsInsecureTokenSignKey() bool {
	return cfg.App.TokenSignKey == InsecureDefaultTokenSignKey
}
