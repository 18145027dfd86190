// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"bytes"
	"fmt"
)

// Expectation is what an exit check demands of a Result.
type Expectation struct {
	// Stdout is the exact byte sequence the process must write to
	// standard output. Nothing more, nothing less, nothing reordered.
	Stdout []byte

	// ExitStatus is the status the process must return.
	ExitStatus int
}

// Violation is one way a Result fell short of an expectation.
type Violation struct {
	// Property names what was violated: "outcome", "stdout",
	// "exit_status", "stderr".
	Property string

	// Detail is a human-readable description with observed and
	// expected values.
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Property, v.Detail)
}

// Verify compares an exit-check Result against an Expectation. A nil
// return means the run satisfied the bootstrap contract: clean exit
// with the expected status, byte-exact stdout, silent stderr.
func Verify(result Result, expect Expectation) []Violation {
	var violations []Violation

	if result.Outcome != OutcomeExited {
		violations = append(violations, Violation{
			Property: "outcome",
			Detail:   fmt.Sprintf("process %s, want a clean exit", describeEnding(result)),
		})
		// Stream checks still apply: a hung or signaled process may
		// have produced output worth reporting against.
	}

	if result.Outcome == OutcomeExited && result.ExitCode != expect.ExitStatus {
		violations = append(violations, Violation{
			Property: "exit_status",
			Detail:   fmt.Sprintf("exited with %d, want %d", result.ExitCode, expect.ExitStatus),
		})
	}

	if !bytes.Equal(result.Stdout, expect.Stdout) {
		violations = append(violations, Violation{
			Property: "stdout",
			Detail:   fmt.Sprintf("wrote %q, want exactly %q", result.Stdout, expect.Stdout),
		})
	}

	if len(result.Stderr) != 0 {
		violations = append(violations, Violation{
			Property: "stderr",
			Detail:   fmt.Sprintf("wrote %q, want no writes to any other stream", result.Stderr),
		})
	}

	return violations
}

// CheckHang compares a hang-check Result against the fault contract:
// the process must never exit and must produce no output on either
// stream. The harness's deadline kill is the only acceptable ending.
func CheckHang(result Result) []Violation {
	var violations []Violation

	if result.Outcome != OutcomeHung {
		violations = append(violations, Violation{
			Property: "outcome",
			Detail:   fmt.Sprintf("process %s, want it to hang until killed", describeEnding(result)),
		})
	}

	if len(result.Stdout) != 0 {
		violations = append(violations, Violation{
			Property: "stdout",
			Detail:   fmt.Sprintf("wrote %q, want silence after the fault", result.Stdout),
		})
	}

	if len(result.Stderr) != 0 {
		violations = append(violations, Violation{
			Property: "stderr",
			Detail:   fmt.Sprintf("wrote %q, want silence after the fault", result.Stderr),
		})
	}

	return violations
}

// describeEnding renders a Result's ending for violation messages.
func describeEnding(result Result) string {
	switch result.Outcome {
	case OutcomeExited:
		return fmt.Sprintf("exited with %d", result.ExitCode)
	case OutcomeHung:
		return "hung until the deadline kill"
	case OutcomeSignaled:
		return fmt.Sprintf("died to a signal (%s)", result.Signal)
	default:
		return fmt.Sprintf("ended with unknown outcome %q", result.Outcome)
	}
}
