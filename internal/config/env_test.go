// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_VERSION":        "1.2.3",

		"LIMITS_USERNAME_MIN_LENGTH": "4",
		"LIMITS_USERNAME_MAX_LENGTH": "20",
		"LIMITS_PASSWORD_MIN_LENGTH": "8",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, 4, cfg.Limits.UsernameMinLength)
	assert.Equal(t, 20, cfg.Limits.UsernameMaxLength)
	assert.Equal(t, 8, cfg.Limits.PasswordMinLength)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Zero(t, cfg.Limits.UsernameMinLength)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "not-a-duration"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
