// Package configloader resolves the effective minigrep configuration.
// It merges, in order of increasing precedence: defaults, a project
// config file discovered upward from the working directory, environment
// variables, and CLI flags. All process-state lookups (argv, environ)
// live here so the search core stays pure.
package configloader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mohamedeliwa/minigrep/pkg/config"
)

// configFileNames are the project config file names searched for, in
// order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".minigrep.yml",
	".minigrep.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root; upward
// discovery stops there.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for the project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing file
	// is an error rather than a silent fallback.
	ExplicitPath string

	// CLIIgnoreCase is the --ignore-case flag value, set only when the
	// flag was explicitly provided. CLI flags take highest precedence.
	CLIIgnoreCase *bool

	// CLIColor is the --color flag value, set only when explicitly provided.
	CLIColor *string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the config files that were actually loaded.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// fileConfig mirrors config.Config with pointer fields so keys absent
// from the file do not clobber lower-precedence values.
type fileConfig struct {
	IgnoreCase *bool   `yaml:"ignore_case"`
	Color      *string `yaml:"color"`
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (MINIGREP_*)
//  3. Explicit config file (--config) or discovered .minigrep.yml
//  4. Defaults
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Config: config.Default(),
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	path, err := resolveConfigPath(opts.ExplicitPath, workDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := applyFile(result.Config, path); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	applyEnv(result.Config)

	if opts.CLIIgnoreCase != nil {
		result.Config.IgnoreCase = *opts.CLIIgnoreCase
	}
	if opts.CLIColor != nil {
		result.Config.Color = config.ColorMode(*opts.CLIColor)
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// resolveConfigPath returns the config file to load, or "" when none
// exists. An explicit path must exist; a discovered one is optional.
func resolveConfigPath(explicit, workDir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	return discoverProjectConfig(workDir), nil
}

// discoverProjectConfig searches upward from workDir for a project
// config file, stopping at a VCS root or the filesystem root.
func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// applyFile merges a yaml config file into cfg.
func applyFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.IgnoreCase != nil {
		cfg.IgnoreCase = *fc.IgnoreCase
	}
	if fc.Color != nil {
		cfg.Color = config.ColorMode(*fc.Color)
	}

	return nil
}
