// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"
	"time"

	"github.com/minboot-project/minboot/lib/checkdef"
	"github.com/minboot-project/minboot/lib/config"
)

func TestResolveTimeoutPrecedence(t *testing.T) {
	cfg := &config.Config{DefaultTimeout: "7s"}

	// Flag wins over everything.
	check := &checkdef.Check{Binary: "b", Timeout: "3s"}
	if got := resolveTimeout(time.Second, check, cfg); got != time.Second {
		t.Errorf("flag override: got %v, want 1s", got)
	}

	// Definition wins over config.
	if got := resolveTimeout(0, check, cfg); got != 3*time.Second {
		t.Errorf("definition timeout: got %v, want 3s", got)
	}

	// Config fills the gap.
	bare := &checkdef.Check{Binary: "b"}
	if got := resolveTimeout(0, bare, cfg); got != 7*time.Second {
		t.Errorf("config default: got %v, want 7s", got)
	}

	// Built-in default when nothing is set.
	if got := resolveTimeout(0, bare, &config.Config{}); got != 10*time.Second {
		t.Errorf("built-in default: got %v, want 10s", got)
	}
}

func TestResolveReportPath(t *testing.T) {
	cfg := &config.Config{ReportDir: "/var/lib/minboot/reports"}

	if got := resolveReportPath("hello.report", cfg); got != "/var/lib/minboot/reports/hello.report" {
		t.Errorf("bare name: got %q", got)
	}
	if got := resolveReportPath("out/hello.report", cfg); got != "out/hello.report" {
		t.Errorf("explicit path: got %q", got)
	}
	if got := resolveReportPath("hello.report", &config.Config{}); got != "hello.report" {
		t.Errorf("no report dir: got %q", got)
	}
}
