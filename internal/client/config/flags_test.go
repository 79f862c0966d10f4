package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "Test1 OK",
			args: []string{"-a", "http://127.0.0.1:9090", "-t", "5s", "-n", "Ada", "-zero-hours-measured"},
			expected: func() *Config {
				c := defaults()
				c.APIBaseURL = "http://127.0.0.1:9090"
				c.RequestTimeout = 5 * time.Second
				c.UserDisplayName = "Ada"
				c.ZeroStudyTimeIsMeasured = true
				return c
			}(),
		},
		{
			name:     "Test2 foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-db", "other.db", "dashboard"},
			expected: func() *Config { c := defaults(); c.CredentialDB = "other.db"; return c }(),
		},
		{name: "Test3 incorrect timeout", args: []string{"-t", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := defaults()

			err := parseFlags(cfg)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
