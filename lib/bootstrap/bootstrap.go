// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import "github.com/minboot-project/minboot/lib/sysio"

// State is a position in the bootstrap's lifecycle. The zero value is
// Running, the initial state. Both Exited and Halted are terminal.
type State int

const (
	// Running is the initial state: the process has been entered and
	// the single output operation has not yet completed.
	Running State = iota

	// Exited is the terminal success state: the message was written
	// and status 0 is returned to the operating environment.
	Exited

	// Halted is the terminal fault state: the fault hook was invoked
	// and control never returns to the operating environment. No value
	// of run ever carries this state; a process that reaches it spins
	// forever and must be killed externally.
	Halted
)

// String returns the state name for logs and reports.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// Run performs the bootstrap: one raw write of the fixed message to
// standard output, then status 0. On an unrecoverable inconsistency
// (the write fails or is short) Run never returns; the process enters
// the Halted state via Halt.
//
// The caller is main(), which passes the returned status to os.Exit.
// Arguments handed to the process are accepted and ignored, matching
// the native entry-point contract.
func Run() int {
	run(sysio.WriteStdout, Halt)
	return 0
}

// run is the injectable core of Run. write performs the single output
// operation; fault is the hook for unrecoverable inconsistencies and
// must not return. Tests inject a recording writer and a fault stub
// that panics, standing in for divergence.
//
// run returns the terminal state reached. Because fault must not
// return, the only value run ever returns is Exited; the panic below
// enforces the divergence contract against misbehaving stubs.
func run(write func([]byte) error, fault func()) State {
	// The message is deliberately scoped here: it is the only data the
	// bootstrap owns, it is immutable, and nothing else may touch it.
	const message = "Hello, world!\n"

	if err := write([]byte(message)); err != nil {
		fault()
		panic("bootstrap: fault hook returned")
	}
	return Exited
}

// Halt is the fault hook: it never returns and performs no observable
// action. The spin loop models the terminal halt state of an
// environment with no unwinding, no logging, and no safe cleanup
// path. A halted process stops responding and must be terminated by
// the operating environment's process manager.
func Halt() {
	for {
	}
}
