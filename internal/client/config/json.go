package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studydash/internal/flagx"
	"github.com/dmitrijs2005/studydash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value, so a file only overrides
// what it names.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	CredentialDB    *string         `json:"credential_db"`
	CredentialKey   *string         `json:"credential_key"`
	UserDisplayName *string         `json:"user_display_name"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`

	ZeroStudyTimeIsMeasured *bool `json:"zero_study_time_is_measured"`
	ZeroAccuracyIsMeasured  *bool `json:"zero_accuracy_is_measured"`
}

// parseJson overlays cfg with values loaded from the file named by -c,
// -config or $STUDYDASH_CONFIG. Without a path it does nothing.
func parseJson(cfg *Config) error {
	path := flagx.ConfigFile()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.CredentialDB, jc.CredentialDB)
	setIf(&cfg.CredentialKey, jc.CredentialKey)
	setIf(&cfg.UserDisplayName, jc.UserDisplayName)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.ZeroStudyTimeIsMeasured, jc.ZeroStudyTimeIsMeasured)
	setIf(&cfg.ZeroAccuracyIsMeasured, jc.ZeroAccuracyIsMeasured)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
