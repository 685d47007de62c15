package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLimitsConfigs indicates inconsistent input limits
	// (for example, a maximum username length below the minimum).
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
	// ErrInvalidServerConfigs indicates invalid server transport settings
	// (for example, an empty HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
