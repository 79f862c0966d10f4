package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydash/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:5000", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "studydash.db", c.CredentialDB)
	assert.Equal(t, "firebaseIdToken", c.CredentialKey)
	assert.Equal(t, "Student", c.UserDisplayName)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.ZeroStudyTimeIsMeasured)
	assert.False(t, c.ZeroAccuracyIsMeasured)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "relative url", mutate: func(c *Config) { c.APIBaseURL = "/api" }},
		{name: "bad scheme", mutate: func(c *Config) { c.APIBaseURL = "ftp://host" }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
		{name: "empty key", mutate: func(c *Config) { c.CredentialKey = "" }},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }},
		{name: "empty db", mutate: func(c *Config) { c.CredentialDB = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	withArgs(t)
	t.Setenv(flagx.ConfigFileEnv, "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, defaults(), cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":      "http://json:1",
		"request_timeout":   "3s",
		"user_display_name": "FromJSON",
		"credential_db":     "json.db",
	})
	t.Setenv(flagx.ConfigFileEnv, "")
	t.Setenv("STUDYDASH_API_BASE_URL", "http://env:2")
	t.Setenv("STUDYDASH_USER_DISPLAY_NAME", "FromEnv")
	withArgs(t, "-c", path, "-n", "FromFlag")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://env:2", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json.db", cfg.CredentialDB)
	assert.Equal(t, "FromFlag", cfg.UserDisplayName)
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	t.Setenv(flagx.ConfigFileEnv, "")
	withArgs(t, "-log-format", "yaml")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrInvalidConfig)
}
