// Package configloader resolves the golst configuration from defaults,
// config files, a .env file, environment variables and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/golst/pkg/config"
	"github.com/yaklabco/golst/pkg/style"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file given with --config. It is loaded on
	// top of any discovered project config.
	ExplicitPath string

	// IgnoreUserConfig skips $XDG_CONFIG_HOME/golst.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips the upward search for .golst.yml.
	IgnoreProjectConfig bool

	// IgnoreEnv skips GOLST_* variables and the .env file.
	IgnoreEnv bool

	// LookupEnv reads an environment variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Style is the style file named by Config.Style, or nil.
	Style *style.Bundle

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOLST_*), then the .env file
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.golst.yml or .golst.toml, upward search)
//  5. User config ($XDG_CONFIG_HOME/golst/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	result := &LoadResult{Paths: paths}

	cfg := config.NewConfig()
	layers := []struct {
		path string
		skip bool
		what string
	}{
		{path: paths.User, skip: opts.IgnoreUserConfig, what: "user"},
		{path: paths.Project, skip: opts.IgnoreProjectConfig, what: "project"},
		{path: paths.Explicit, what: "explicit"},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := LoadFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.what, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		lookup := opts.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		if paths.DotEnv != "" {
			fromFile, err := readDotEnv(paths.DotEnv)
			if err != nil {
				return nil, err
			}
			lookup = withFallback(lookup, fromFile)
			result.LoadedFrom = append(result.LoadedFrom, paths.DotEnv)
		}
		if err := applyEnv(cfg, lookup); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	if cfg.Style != "" {
		stylePath := cfg.Style
		if !filepath.IsAbs(stylePath) {
			stylePath = filepath.Join(workDir, stylePath)
		}
		loaded, err := style.LoadFile(stylePath)
		if err != nil {
			return nil, fmt.Errorf("load style: %w", err)
		}
		result.Style = loaded.Bundle
		for _, w := range loaded.Warnings {
			result.Warnings = append(result.Warnings, stylePath+": "+w)
		}
	}

	result.Config = cfg
	return result, nil
}

// LoadFile reads one configuration file, picking the codec by extension.
func LoadFile(path string) (*config.Config, error) {
	format, err := style.FormatFor(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cfg, err := config.Decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
