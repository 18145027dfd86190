// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes forming the verify CLI's contract with scripts and CI.
const (
	// ExitPass means every check passed.
	ExitPass = 0

	// ExitViolation means the run completed but at least one check
	// failed (wrong bytes, wrong status, unexpected survival of a
	// hang check).
	ExitViolation = 1

	// ExitUsage means the invocation itself was wrong: bad flags,
	// unreadable check definition, missing binary.
	ExitUsage = 2
)

// ExitError carries a specific process exit code out of a command
// handler. The message, if any, has already been printed by the
// handler; main() exits with Code without further output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// Fatal writes "error: err" to stderr and exits. An *ExitError exits
// silently with its code; any other error exits with ExitUsage. Use in
// main() for errors from run() where the structured logger may not be
// initialized.
func Fatal(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(ExitUsage)
}
