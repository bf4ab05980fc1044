// Package configloader resolves the effective leandoc configuration
// from defaults, a discovered config file, environment variables, and
// CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/leandoc/internal/logging"
	"github.com/yaklabco/leandoc/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory searched for a project config file.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file path from the --config flag. When
	// set, discovery is skipped and a missing file is an error.
	ExplicitPath string

	// SkipEnv disables LEANDOC_* environment overrides, including the
	// $LEANDOC_CONFIG path.
	SkipEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Path is the config file that was loaded, empty when none.
	Path string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (LEANDOC_*)
//  3. Config file: --config path, then $LEANDOC_CONFIG, then
//     .leandoc.yaml / .leandoc.yml in the working directory
//  4. Defaults
//
// A missing discovered file falls back to defaults; a missing explicit
// file and any malformed file are errors.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.Default()
	result := &LoadResult{}

	path := resolvePath(opts.ExplicitPath, workDir, opts.SkipEnv)
	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = merge(cfg, fileCfg)
		result.Path = path
	}

	if !opts.SkipEnv {
		if err := LoadFromEnv(cfg); err != nil {
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
		result.Warnings = append(result.Warnings, w.Message)
	}

	logger := logging.FromContext(ctx)
	if result.Path != "" {
		logger.Debug("loaded config file", logging.FieldPath, result.Path)
	}
	if data, err := cfg.ToYAML(); err == nil {
		logger.Debug("resolved configuration", "yaml", strings.TrimSpace(string(data)))
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
