// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.EffectiveDefaultTimeout() != 10*time.Second {
		t.Errorf("EffectiveDefaultTimeout = %v, want 10s", cfg.EffectiveDefaultTimeout())
	}
	if cfg.ReportDir != "" {
		t.Errorf("ReportDir = %q, want empty", cfg.ReportDir)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verify.yaml")
	content := "default_timeout: 3s\nreport_dir: /var/lib/minboot/reports\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.EffectiveDefaultTimeout() != 3*time.Second {
		t.Errorf("EffectiveDefaultTimeout = %v, want 3s", cfg.EffectiveDefaultTimeout())
	}
	if cfg.ReportDir != "/var/lib/minboot/reports" {
		t.Errorf("ReportDir = %q", cfg.ReportDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verify.yaml")
	if err := os.WriteFile(path, []byte("default_timeout: 2s\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.EffectiveDefaultTimeout() != 2*time.Second {
		t.Errorf("EffectiveDefaultTimeout = %v, want 2s", cfg.EffectiveDefaultTimeout())
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verify.yaml")
	if err := os.WriteFile(path, []byte("default_timeout: fast\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unparseable default_timeout")
	}
}

func TestLoadRejectsMissingNamedFile(t *testing.T) {
	// An explicitly named file that does not exist is an error, not a
	// silent fall-through to defaults.
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing explicit config path")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verify.yaml")
	if err := os.WriteFile(path, []byte(":\n\t-"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}
