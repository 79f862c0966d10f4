// Package config loads runtime configuration for the studydash client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected by -c, -config or $STUDYDASH_CONFIG.
//  3. STUDYDASH_* environment variables.
//  4. Command-line flags, which override everything before them.
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and 10000000000 are equivalent.
// Every key is optional:
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "10s",
//	  "credential_db": "studydash.db",
//	  "credential_key": "firebaseIdToken",
//	  "user_display_name": "Student",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "zero_study_time_is_measured": false,
//	  "zero_accuracy_is_measured": false
//	}
package config
