// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package checkdef provides parsing and validation for verification
// check definitions. A check names a bootstrap binary and the behavior
// the harness must observe: either a clean exit with exact output, or
// a silent hang that only a kill can end.
//
// Checks are authored on disk as JSONC files (JSON extended with //
// line comments, /* block comments */, and trailing commas). The
// typical flow:
//
//  1. ReadFile or Parse: JSONC bytes → Check
//  2. Validate: structural checks (binary required, known mode,
//     parseable timeout, no expectations on hang checks)
//  3. The CLI converts the Check into a harness.RunSpec and
//     harness.Expectation
package checkdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
)

// DefaultStdout is the canonical bootstrap output, the default
// expectation for exit checks that do not override it.
const DefaultStdout = "Hello, world!\n"

// DefaultTimeout bounds a check when the definition does not set one.
const DefaultTimeout = 10 * time.Second

// Mode selects what the harness must observe.
type Mode string

const (
	// ModeExit expects the binary to exit with the given status after
	// writing exactly the expected bytes to stdout and nothing to
	// stderr.
	ModeExit Mode = "exit"

	// ModeHang expects the binary to produce no output and never
	// exit; the harness kills it at the timeout and that is the pass
	// condition.
	ModeHang Mode = "hang"
)

// Check is one verification check definition.
type Check struct {
	// Name identifies the check in reports and output. Defaults to
	// the definition filename (see NameFromPath).
	Name string `json:"name,omitempty"`

	// Binary is the path of the binary to run. Required.
	Binary string `json:"binary"`

	// Mode is "exit" or "hang". Defaults to "exit".
	Mode Mode `json:"mode,omitempty"`

	// Stdout is the exact expected standard output for exit checks.
	// Defaults to DefaultStdout. Must be absent for hang checks.
	Stdout *string `json:"stdout,omitempty"`

	// ExitStatus is the expected status for exit checks. Defaults to
	// 0. Must be absent for hang checks.
	ExitStatus *int `json:"exit_status,omitempty"`

	// Timeout is how long the harness waits before declaring a hang,
	// as a Go duration string ("10s", "500ms"). Defaults to
	// DefaultTimeout.
	Timeout string `json:"timeout,omitempty"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a Check.
func Parse(data []byte) (*Check, error) {
	stripped := jsonc.ToJSON(data)

	var check Check
	if err := json.Unmarshal(stripped, &check); err != nil {
		return nil, fmt.Errorf("parsing check definition: %w", err)
	}
	return &check, nil
}

// ReadFile reads a JSONC check definition from disk. When the
// definition has no name, the filename (without extension) is used.
func ReadFile(path string) (*Check, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	check, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if check.Name == "" {
		check.Name = NameFromPath(path)
	}
	return check, nil
}

// Validate performs structural checks on a definition. It does not
// touch the filesystem; a check for a binary that does not exist yet
// is valid.
func (c *Check) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("check %q: binary is required", c.Name)
	}

	switch c.Mode {
	case "", ModeExit:
	case ModeHang:
		if c.Stdout != nil {
			return fmt.Errorf("check %q: hang checks must not set stdout (the pass condition is silence)", c.Name)
		}
		if c.ExitStatus != nil {
			return fmt.Errorf("check %q: hang checks must not set exit_status (the process never exits)", c.Name)
		}
	default:
		return fmt.Errorf("check %q: unknown mode %q (want %q or %q)", c.Name, c.Mode, ModeExit, ModeHang)
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("check %q: invalid timeout: %w", c.Name, err)
		}
		if d <= 0 {
			return fmt.Errorf("check %q: timeout must be positive, got %v", c.Name, d)
		}
	}

	return nil
}

// EffectiveMode returns the mode with the default applied.
func (c *Check) EffectiveMode() Mode {
	if c.Mode == "" {
		return ModeExit
	}
	return c.Mode
}

// EffectiveStdout returns the expected standard output with the
// default applied: DefaultStdout for exit checks, empty for hang
// checks.
func (c *Check) EffectiveStdout() []byte {
	if c.EffectiveMode() == ModeHang {
		return nil
	}
	if c.Stdout != nil {
		return []byte(*c.Stdout)
	}
	return []byte(DefaultStdout)
}

// EffectiveExitStatus returns the expected exit status with the
// default applied.
func (c *Check) EffectiveExitStatus() int {
	if c.ExitStatus != nil {
		return *c.ExitStatus
	}
	return 0
}

// EffectiveTimeout returns the timeout with the default applied.
// Validate must have accepted the definition first; an unparseable
// timeout here falls back to the default.
func (c *Check) EffectiveTimeout() time.Duration {
	if c.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// NameFromPath extracts a check name from a file path by stripping the
// directory prefix and extension: "checks/hello-exit.jsonc" becomes
// "hello-exit".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
