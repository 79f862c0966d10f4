package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydash/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":                "https://study.example",
		"request_timeout":             "30s",
		"zero_study_time_is_measured": true,
	})
	pathEnv := writeTempJSON(t, dir, "env.json", map[string]any{
		"user_display_name": "Ada",
		"request_timeout":   int64(2 * time.Second),
	})

	t.Run("loads from flags", func(t *testing.T) {
		t.Setenv(flagx.ConfigFileEnv, "")
		withArgs(t, "-config", pathFlag)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "https://study.example", cfg.APIBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.ZeroStudyTimeIsMeasured)
		assert.Equal(t, "Student", cfg.UserDisplayName, "absent keys keep their value")
	})

	t.Run("loads from environment path", func(t *testing.T) {
		t.Setenv(flagx.ConfigFileEnv, pathEnv)
		withArgs(t)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "Ada", cfg.UserDisplayName)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		t.Setenv(flagx.ConfigFileEnv, "")
		withArgs(t)

		cfg := &Config{APIBaseURL: "http://defaults:1234", RequestTimeout: 42 * time.Second}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		t.Setenv(flagx.ConfigFileEnv, "")
		withArgs(t, "-config", bad)

		require.Error(t, parseJson(defaults()))
	})

	t.Run("missing file → error", func(t *testing.T) {
		t.Setenv(flagx.ConfigFileEnv, "")
		withArgs(t, "-c", filepath.Join(dir, "nope.json"))

		require.Error(t, parseJson(defaults()))
	})
}
