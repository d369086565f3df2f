package configloader

import "github.com/yaklabco/golst/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only true is carried over, so a file cannot unset a flag
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Style != "" {
		result.Style = override.Style
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.Diff {
		result.Diff = true
	}

	if override.Include != nil {
		result.Include = override.Include
	}
	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}

	return &result
}

// MergeAll merges configurations in order, with later configs taking
// precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, c := range configs {
		result = merge(result, c)
	}
	return result
}
