package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. STUDYDASH_API_BASE_URL.
const EnvPrefix = "STUDYDASH"

// parseEnv overlays cfg with STUDYDASH_* variables. Unset variables leave
// the current value alone.
func parseEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("env config: %w", err)
	}
	return nil
}
