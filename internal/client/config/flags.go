package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/studydash/internal/flagx"
)

var (
	valuedFlags = []string{"-a", "-t", "-db", "-k", "-n", "-log-level", "-log-format"}
	boolFlags   = []string{"-zero-hours-measured", "-zero-accuracy-measured"}
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string                  backend base URL
//	-t duration                per-request timeout
//	-db string                 credential database path
//	-k string                  credential key holding the ID token
//	-n string                  display name used in the greeting
//	-log-level string          debug, info, warn or error
//	-log-format string         text or json
//	-zero-hours-measured       show 0h instead of N/A
//	-zero-accuracy-measured    show 0% instead of N/A
//
// os.Args is filtered with flagx.Filter first so the -c/-config flag owned by
// the JSON layer does not trip the parser.
func parseFlags(cfg *Config) error {
	args := flagx.Filter(os.Args[1:], valuedFlags, boolFlags)

	fs := flag.NewFlagSet("studydash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.CredentialDB, "db", cfg.CredentialDB, "credential database path")
	fs.StringVar(&cfg.CredentialKey, "k", cfg.CredentialKey, "credential key holding the ID token")
	fs.StringVar(&cfg.UserDisplayName, "n", cfg.UserDisplayName, "display name used in the greeting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")
	fs.BoolVar(&cfg.ZeroStudyTimeIsMeasured, "zero-hours-measured", cfg.ZeroStudyTimeIsMeasured, "show 0h instead of N/A")
	fs.BoolVar(&cfg.ZeroAccuracyIsMeasured, "zero-accuracy-measured", cfg.ZeroAccuracyIsMeasured, "show 0% instead of N/A")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
