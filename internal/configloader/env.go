package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yaklabco/golst/pkg/config"
)

// envVarPrefix is the prefix for all golst environment variables.
const envVarPrefix = "GOLST_"

// envVar binds one variable to the config field it sets.
type envVar struct {
	help  string
	apply func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"STYLE": {
		help:  "Path to a style file",
		apply: func(cfg *config.Config, v string) error { cfg.Style = v; return nil },
	},
	"INCLUDE": {
		help:  "Comma-separated include patterns",
		apply: func(cfg *config.Config, v string) error { cfg.Include = splitList(v); return nil },
	},
	"EXCLUDE": {
		help:  "Comma-separated exclude patterns",
		apply: func(cfg *config.Config, v string) error { cfg.Exclude = splitList(v); return nil },
	},
	"JOBS": {
		help: "Number of files processed at once (0 = auto)",
		apply: func(cfg *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			cfg.Jobs = n
			return nil
		},
	},
	"BACKUPS": {
		help:  "Keep a backup of rewritten files: true or false",
		apply: boolField(func(cfg *config.Config, b bool) { cfg.Backups.Enabled = b }),
	},
	"DRY_RUN": {
		help:  "Compute rewrites without writing: true or false",
		apply: boolField(func(cfg *config.Config, b bool) { cfg.DryRun = b }),
	},
	"DIFF": {
		help:  "Print a diff for each rewrite: true or false",
		apply: boolField(func(cfg *config.Config, b bool) { cfg.Diff = b }),
	},
	"LOG_LEVEL": {
		help:  "Log level: debug, info, warn or error",
		apply: func(cfg *config.Config, v string) error { cfg.LogLevel = v; return nil },
	},
	"COLOR": {
		help:  "Color output: auto, always or never",
		apply: func(cfg *config.Config, v string) error { cfg.Color = v; return nil },
	},
}

func boolField(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		set(cfg, b)
		return nil
	}
}

// applyEnv applies GOLST_* overrides read through lookup.
func applyEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	for _, suffix := range sortedKeys() {
		name := envVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := envVars[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// readDotEnv reads a .env file without touching the process environment.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

// withFallback consults values when lookup has no answer, so real
// environment variables win over the .env file.
func withFallback(lookup func(string) (string, bool), values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func sortedKeys() []string {
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListEnvVars returns every supported environment variable with a short
// description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.help
	}
	return out
}
