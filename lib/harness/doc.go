// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package harness runs bootstrap binaries and observes them from the
// outside: exact bytes on each stream, exit status, and whether the
// process exited at all.
//
// The outside view is the whole point. A halted bootstrap never
// returns control, produces no exit status, and cannot report itself;
// the only way to verify the fault contract is to wait out a deadline
// and kill the process. Run does exactly that, and CheckHang treats
// the kill as the pass condition.
//
// Verification is split from execution. Run produces a Result (what
// happened); Verify and CheckHang compare a Result against an
// expectation and return violations (what should have happened but
// did not). The CLI and the integration tests share both halves.
package harness
