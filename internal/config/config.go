// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// InsecureDefaultTokenSignKey is the token signing key used when no key is
// supplied through environment, flags, or the JSON config file. It exists so
// that the server can start in local development without any setup.
//
// It is deliberately obvious and MUST NOT be used in production; the server
// logs a warning at startup when this value is in effect.
const InsecureDefaultTokenSignKey = "insecure-dev-token-sign-key-do-not-use"

// StructuredConfig is the top-level configuration container for the
// go-note-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Limits holds input boundaries enforced during registration.
	Limits Limits `envPrefix:"LIMITS_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Defaults to [InsecureDefaultTokenSignKey]
	// when unset, which is only acceptable outside production.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m"). Defaults to 60 minutes.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Limits holds the input boundaries checked at signup time.
type Limits struct {
	// UsernameMinLength is the minimum accepted username length after
	// normalization. Defaults to 3.
	// Env: LIMITS_USERNAME_MIN_LENGTH
	UsernameMinLength int `env:"USERNAME_MIN_LENGTH"`

	// UsernameMaxLength is the maximum accepted username length after
	// normalization. Defaults to 50.
	// Env: LIMITS_USERNAME_MAX_LENGTH
	UsernameMaxLength int `env:"USERNAME_MAX_LENGTH"`

	// PasswordMinLength is the minimum accepted password length.
	// Defaults to 6.
	// Env: LIMITS_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Defaults to ":8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the built-in fallback values merged in as the
// lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  InsecureDefaultTokenSignKey,
			TokenIssuer:   "go-note-keeper",
			TokenDuration: 60 * time.Minute,
			Version:       "dev",
		},
		Limits: Limits{
			UsernameMinLength: 3,
			UsernameMaxLength: 50,
			PasswordMinLength: 6,
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
