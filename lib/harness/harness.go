// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/minboot-project/minboot/lib/binhash"
	"github.com/minboot-project/minboot/lib/clock"
)

// Outcome classifies how an observed process run ended.
type Outcome string

const (
	// OutcomeExited means the process returned a status to the
	// operating environment on its own.
	OutcomeExited Outcome = "exited"

	// OutcomeHung means the process neither exited nor was signaled
	// before the deadline; the harness killed it. This is the
	// expected outcome for the fault path.
	OutcomeHung Outcome = "hung"

	// OutcomeSignaled means the process was terminated by a signal it
	// received on its own (not the harness's deadline kill).
	OutcomeSignaled Outcome = "signaled"
)

// RunSpec describes one observed run.
type RunSpec struct {
	// Binary is the path of the binary to execute. It is invoked with
	// an empty argument vector: argv carries only the binary path
	// itself.
	Binary string

	// Timeout is how long to wait before declaring a hang and killing
	// the process. Required.
	Timeout time.Duration
}

// Result is everything the harness observed about one run.
type Result struct {
	// Outcome classifies the ending.
	Outcome Outcome

	// ExitCode is the status returned to the operating environment.
	// Meaningful only when Outcome is OutcomeExited.
	ExitCode int

	// Signal describes the terminating signal when Outcome is
	// OutcomeSignaled (e.g. "signal: segmentation fault").
	Signal string

	// Stdout and Stderr are the exact bytes captured from each
	// stream, including anything written before a kill.
	Stdout []byte
	Stderr []byte

	// Duration is the wall-clock time from start to reaping.
	Duration time.Duration

	// BinaryDigest is the SHA256 of the binary file, computed before
	// the run. Two results describe the same program exactly when
	// their digests match.
	BinaryDigest [32]byte
}

// Options configures a Harness. The zero value is usable: real clock,
// default logger.
type Options struct {
	// Clock drives the deadline and duration measurement. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger receives run lifecycle events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Harness executes bootstrap binaries under observation.
type Harness struct {
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a Harness.
func New(options Options) *Harness {
	c := options.Clock
	if c == nil {
		c = clock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{clock: c, logger: logger}
}

// Run executes spec.Binary with an empty argument vector, captures
// both output streams, and waits for exit, signal, deadline, or
// context cancellation — whichever comes first. On deadline the
// process is killed and the outcome is OutcomeHung; on context
// cancellation the process is killed and Run returns the context's
// error.
//
// Run returns an error only when the observation itself could not be
// carried out (unreadable binary, failed start, canceled context). A
// run that ends badly for the binary is a successful observation.
func (h *Harness) Run(ctx context.Context, spec RunSpec) (Result, error) {
	if spec.Timeout <= 0 {
		return Result{}, fmt.Errorf("run spec for %s: timeout is required", spec.Binary)
	}

	digest, err := binhash.HashFile(spec.Binary)
	if err != nil {
		return Result{}, fmt.Errorf("hashing binary: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(spec.Binary)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := h.clock.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("starting %s: %w", spec.Binary, err)
	}

	h.logger.Debug("process started",
		"binary", spec.Binary,
		"pid", cmd.Process.Pid,
		"timeout", spec.Timeout,
		"digest", binhash.FormatDigest(digest))

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	result := Result{BinaryDigest: digest}

	select {
	case waitErr := <-done:
		result.Outcome, result.ExitCode, result.Signal = classify(cmd, waitErr)

	case <-h.clock.After(spec.Timeout):
		// Deadline passed with the process still running: the halt
		// contract in action. Kill it and reap; whatever the streams
		// already hold is evidence.
		cmd.Process.Kill()
		<-done
		result.Outcome = OutcomeHung

	case <-ctx.Done():
		cmd.Process.Kill()
		<-done
		return Result{}, fmt.Errorf("run of %s canceled: %w", spec.Binary, ctx.Err())
	}

	result.Duration = h.clock.Now().Sub(start)
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	h.logger.Info("process observed",
		"binary", spec.Binary,
		"outcome", result.Outcome,
		"exit_code", result.ExitCode,
		"stdout_bytes", len(result.Stdout),
		"stderr_bytes", len(result.Stderr),
		"duration", result.Duration)

	return result, nil
}

// classify maps a completed cmd.Wait to an outcome. An exit code of -1
// with a wait error means the process died to a signal it received on
// its own; the harness's deadline kill never reaches here because the
// deadline branch does not consult the wait error.
func classify(cmd *exec.Cmd, waitErr error) (Outcome, int, string) {
	state := cmd.ProcessState
	if waitErr == nil {
		return OutcomeExited, 0, ""
	}
	if _, ok := waitErr.(*exec.ExitError); ok {
		if code := state.ExitCode(); code >= 0 {
			return OutcomeExited, code, ""
		}
		return OutcomeSignaled, -1, state.String()
	}
	// Wait itself failed in some other way; treat as a signaled death
	// with whatever description the state carries.
	return OutcomeSignaled, -1, fmt.Sprintf("wait failed: %v", waitErr)
}
