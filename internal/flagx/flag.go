// Package flagx lets several configuration layers share os.Args without
// stepping on each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// ConfigFileEnv names the environment variable consulted when no -c/-config
// flag is given.
const ConfigFileEnv = "STUDYDASH_CONFIG"

// Filter returns the subset of args that belong to the given flags.
//
// valued flags take an argument, either joined ("-a=host") or as the next
// token ("-a host"). A next token that starts with '-' is never taken as a
// value. bools are switches: they are kept only in the bare or joined form
// ("-v", "-v=false") and never consume the following token.
//
// The result is never nil.
func Filter(args []string, valued []string, bools []string) []string {
	takesValue := make(map[string]bool, len(valued)+len(bools))
	for _, f := range valued {
		takesValue[f] = true
	}
	for _, f := range bools {
		takesValue[f] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, joined := strings.Cut(arg, "="); joined {
			if _, ok := takesValue[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		valuedFlag, ok := takesValue[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if valuedFlag && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// FilterArgs is Filter for flags that all take a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	return Filter(args, allowedFlags, nil)
}

// ConfigFile returns the JSON config path from -c / -config, falling back to
// $STUDYDASH_CONFIG. Empty means no file.
func ConfigFile() string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "path to config file")
	fs.StringVar(&config, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config", "--config"}))

	if config == "" {
		config = os.Getenv(ConfigFileEnv)
	}
	return config
}
