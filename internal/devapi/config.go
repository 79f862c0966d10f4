package devapi

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from DEVAPI_* environment variables.
type Config struct {
	Addr     string        `envconfig:"ADDR" default:"127.0.0.1:5000"`
	Secret   string        `envconfig:"SECRET" default:"studydash-dev-secret"`
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("DEVAPI", &c); err != nil {
		return nil, fmt.Errorf("devapi config: %w", err)
	}
	return &c, nil
}
