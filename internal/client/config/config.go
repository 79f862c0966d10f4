package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the studydash client.
//
// Units: RequestTimeout is a time.Duration bounding each backend request.
type Config struct {
	APIBaseURL      string        `envconfig:"API_BASE_URL" validate:"required,http_url"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" validate:"gt=0"`
	CredentialDB    string        `envconfig:"CREDENTIAL_DB" validate:"required"`
	CredentialKey   string        `envconfig:"CREDENTIAL_KEY" validate:"required"`
	UserDisplayName string        `envconfig:"USER_DISPLAY_NAME"`
	LogLevel        string        `envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat       string        `envconfig:"LOG_FORMAT" validate:"oneof=text json"`

	ZeroStudyTimeIsMeasured bool `envconfig:"ZERO_STUDY_TIME_IS_MEASURED"`
	ZeroAccuracyIsMeasured  bool `envconfig:"ZERO_ACCURACY_IS_MEASURED"`
}

var ErrInvalidConfig = errors.New("invalid config")

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.CredentialDB = "studydash.db"
	c.CredentialKey = "firebaseIdToken"
	c.UserDisplayName = "Student"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.ZeroStudyTimeIsMeasured = false
	c.ZeroAccuracyIsMeasured = false
}

var validate = validator.New()

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
