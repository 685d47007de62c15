package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "issuer",
			TokenDuration: time.Hour,
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

func TestValidate_ValidConfig(t *testing.T) {
	require.NoError(t, validTestConfig().validate())
}

func TestValidate_InvalidConfigs(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*StructuredConfig)
		expected error
	}{
		{"empty sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"empty issuer", func(c *StructuredConfig) { c.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(c *StructuredConfig) { c.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"zero username min", func(c *StructuredConfig) { c.Limits.UsernameMinLength = 0 }, ErrInvalidLimitsConfigs},
		{"max below min", func(c *StructuredConfig) { c.Limits.UsernameMaxLength = 2 }, ErrInvalidLimitsConfigs},
		{"zero password min", func(c *StructuredConfig) { c.Limits.PasswordMinLength = 0 }, ErrInvalidLimitsConfigs},
		{"empty address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.expected)
		})
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())
	assert.True(t, cfg.IsInsecureTokenSignKey())
	assert.Equal(t, 60*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 3, cfg.Limits.UsernameMinLength)
	assert.Equal(t, 50, cfg.Limits.UsernameMaxLength)
	assert.Equal(t, 6, cfg.Limits.PasswordMinLength)
}

func TestIsInsecureTokenSignKey_ExplicitKey(t *testing.T) {
	cfg := validTestConfig()
	assert.False(t, cfg.IsInsecureTokenSignKey())
}
