// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the minboot-verify
// CLI.
//
// Configuration comes from a single YAML file named by the
// MINBOOT_CONFIG environment variable or the --config flag. There are
// no search paths and no automatic discovery: what you name is what
// runs, with defaults filling anything the file leaves out.
//
// The bootstrap binaries read no configuration at all. That is part of
// their contract, not an omission.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no explicit
// path is given.
const EnvVar = "MINBOOT_CONFIG"

// Config is the minboot-verify tool configuration.
type Config struct {
	// DefaultTimeout is applied to checks whose definitions carry no
	// timeout, as a Go duration string. Defaults to "10s".
	DefaultTimeout string `yaml:"default_timeout"`

	// ReportDir is where --report writes files when given a bare
	// report name instead of a path. Defaults to the working
	// directory.
	ReportDir string `yaml:"report_dir"`
}

// Load reads configuration from path. An empty path falls back to
// MINBOOT_CONFIG; if that is also unset, Load returns defaults without
// touching the filesystem.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultTimeout != "" {
		d, err := time.ParseDuration(c.DefaultTimeout)
		if err != nil {
			return fmt.Errorf("invalid default_timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("default_timeout must be positive, got %v", d)
		}
	}
	return nil
}

// EffectiveDefaultTimeout returns the configured default timeout, or
// 10 seconds when unset.
func (c *Config) EffectiveDefaultTimeout() time.Duration {
	if c.DefaultTimeout == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(c.DefaultTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
