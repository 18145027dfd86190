// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package integration

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minboot-project/minboot/lib/checkdef"
	"github.com/minboot-project/minboot/lib/clock"
	"github.com/minboot-project/minboot/lib/harness"
	"github.com/minboot-project/minboot/lib/report"
)

func newHarness() *harness.Harness {
	return harness.New(harness.Options{
		Clock:  clock.Real(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestBootstrapContract(t *testing.T) {
	binary := buildBinary(t, "minboot")
	h := newHarness()

	result, err := h.Run(context.Background(), harness.RunSpec{
		Binary:  binary,
		Timeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Outcome != harness.OutcomeExited {
		t.Fatalf("Outcome = %q, want %q", result.Outcome, harness.OutcomeExited)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if !bytes.Equal(result.Stdout, []byte("Hello, world!\n")) {
		t.Errorf("Stdout = %q, want exactly %q", result.Stdout, "Hello, world!\n")
	}
	if len(result.Stderr) != 0 {
		t.Errorf("Stderr = %q, want no writes to any other stream", result.Stderr)
	}

	violations := harness.Verify(result, harness.Expectation{
		Stdout:     []byte("Hello, world!\n"),
		ExitStatus: 0,
	})
	if len(violations) != 0 {
		t.Errorf("Verify reported violations: %v", violations)
	}
}

func TestBootstrapIdempotence(t *testing.T) {
	// Two separate process instances yield byte-identical output.
	binary := buildBinary(t, "minboot")
	h := newHarness()

	first, err := h.Run(context.Background(), harness.RunSpec{Binary: binary, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := h.Run(context.Background(), harness.RunSpec{Binary: binary, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if !bytes.Equal(first.Stdout, second.Stdout) {
		t.Errorf("outputs differ: %q vs %q", first.Stdout, second.Stdout)
	}
	if first.BinaryDigest != second.BinaryDigest {
		t.Error("digests differ for the same binary")
	}
	if first.ExitCode != 0 || second.ExitCode != 0 {
		t.Errorf("exit codes = %d, %d, want 0, 0", first.ExitCode, second.ExitCode)
	}
}

func TestFaultContainment(t *testing.T) {
	// The fault binary must hang silently until the harness kills it.
	// This is the only way to observe the halt contract: no exit
	// status ever comes back.
	binary := buildBinary(t, "minboot-fault")
	h := newHarness()

	result, err := h.Run(context.Background(), harness.RunSpec{
		Binary:  binary,
		Timeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Outcome != harness.OutcomeHung {
		t.Fatalf("Outcome = %q, want %q", result.Outcome, harness.OutcomeHung)
	}
	if len(result.Stdout) != 0 {
		t.Errorf("fault binary wrote %q to stdout, want silence", result.Stdout)
	}
	if len(result.Stderr) != 0 {
		t.Errorf("fault binary wrote %q to stderr, want silence", result.Stderr)
	}
	if violations := harness.CheckHang(result); len(violations) != 0 {
		t.Errorf("CheckHang reported violations: %v", violations)
	}
}

func TestCheckDefinitionEndToEnd(t *testing.T) {
	// JSONC definition → harness run → verification → archived report.
	binary := buildBinary(t, "minboot")

	defPath := filepath.Join(t.TempDir(), "hello.jsonc")
	definition := `{
		// End-to-end check against the built bootstrap.
		"binary": ` + quoteJSON(binary) + `,
		"mode": "exit",
		"timeout": "10s",
	}`
	if err := os.WriteFile(defPath, []byte(definition), 0o644); err != nil {
		t.Fatalf("writing definition: %v", err)
	}

	check, err := checkdef.ReadFile(defPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if err := check.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	h := newHarness()
	result, err := h.Run(context.Background(), harness.RunSpec{
		Binary:  check.Binary,
		Timeout: check.EffectiveTimeout(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	violations := harness.Verify(result, harness.Expectation{
		Stdout:     check.EffectiveStdout(),
		ExitStatus: check.EffectiveExitStatus(),
	})
	if len(violations) != 0 {
		t.Fatalf("Verify reported violations: %v", violations)
	}

	reportPath := filepath.Join(t.TempDir(), "hello.report")
	if err := report.Write(reportPath, report.New(check, result, violations, time.Now())); err != nil {
		t.Fatalf("writing report: %v", err)
	}

	archived, err := report.Read(reportPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !archived.Pass {
		t.Error("archived report Pass = false for a clean run")
	}
	if archived.Check != "hello" {
		t.Errorf("archived report Check = %q, want %q", archived.Check, "hello")
	}
}

// quoteJSON wraps a path in JSON string quotes, escaping backslashes
// for the benefit of odd temp paths.
func quoteJSON(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(append(out, '"'))
}
