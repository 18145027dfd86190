// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package bootstrap implements the minimal process bootstrap: run
// without any supporting machinery, perform exactly one observable
// side effect (write a fixed message to standard output), and exit
// with status 0.
//
// The bootstrap has a two-outcome state machine. From Running, the
// success path transitions to Exited after the single write completes;
// the fault path transitions to Halted, a terminal state from which
// control never returns to the operating environment. There is no
// third path: no retry, no cleanup, no error reporting. A program this
// small links no facility that could report anything, so the only
// honest response to an unrecoverable inconsistency is to stop
// executing instructions that could produce further output.
//
// The one inconsistency the success path can detect is a failed or
// short write to standard output. When that happens the fault hook
// (Halt) is invoked and the process spins forever. External observers
// must detect the halt with a timeout and a kill; see lib/harness.
package bootstrap
