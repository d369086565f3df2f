// Package config defines the runtime configuration of golst.
// These types are plain data; loading and layering live in the CLI's
// config loader.
package config

// BackupsConfig controls whether rewritten files keep a backup.
type BackupsConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Config is the root configuration structure.
type Config struct {
	// Style is the path to a style file (.yml, .yaml or .toml). Files
	// carrying their own style marker still win over it.
	Style string `toml:"style" yaml:"style"`

	// Include and Exclude are doublestar patterns matched against paths
	// relative to the directory a run starts from.
	Include []string `toml:"include" yaml:"include"`
	Exclude []string `toml:"exclude" yaml:"exclude"`

	// Jobs bounds the number of files processed at once. Zero means
	// GOMAXPROCS.
	Jobs int `toml:"jobs" yaml:"jobs"`

	Backups BackupsConfig `toml:"backups" yaml:"backups"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// DryRun computes rewrites without writing them.
	DryRun bool `toml:"-" yaml:"-"`

	// Diff prints a unified diff for every rewritten file.
	Diff bool `toml:"-" yaml:"-"`

	// Color is auto, always or never.
	Color string `toml:"-" yaml:"-"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultInclude matches the sources golst has a front end for.
const DefaultInclude = "**/*.java"

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Include:  []string{DefaultInclude},
		Backups:  BackupsConfig{Enabled: false},
		LogLevel: "info",
		Color:    ColorAuto,
	}
}
