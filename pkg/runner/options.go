// Package runner discovers source files and runs a transformation over each
// of them concurrently.
package runner

import (
	"github.com/yaklabco/golst/pkg/config"
)

// Options controls multi-file processing behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to match globs against. If empty, the process working directory is used.
	WorkingDir string

	// Include are doublestar patterns a file must match. Empty means
	// config.DefaultInclude.
	Include []string

	// Exclude are doublestar patterns used to skip files or directories.
	Exclude []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of files processed at once.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// DryRun computes rewrites and diffs without writing any file.
	DryRun bool

	// Diff attaches a unified diff to every modified outcome.
	Diff bool

	// Backup keeps a copy of each file before its first rewrite.
	Backup bool
}

// OptionsFromConfig builds Options from the resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:   paths,
		Include: cfg.Include,
		Exclude: cfg.Exclude,
		Jobs:    cfg.Jobs,
		DryRun:  cfg.DryRun,
		Diff:    cfg.Diff || cfg.DryRun,
		Backup:  cfg.Backups.Enabled,
	}
}

// effectiveInclude returns the include patterns, defaulting if empty.
func (o Options) effectiveInclude() []string {
	if len(o.Include) == 0 {
		return []string{config.DefaultInclude}
	}
	return o.Include
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
