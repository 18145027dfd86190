// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package sysio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// stdoutFD is the file descriptor of the standard output stream as
// handed to the process by the operating system loader.
const stdoutFD = 1

// WriteStdout writes b to standard output with a single write system
// call. A short write is returned as an error: the caller asked for
// these exact bytes and nothing else, so emitting a prefix of them is
// a contract violation, not a condition to recover from.
func WriteStdout(b []byte) error {
	return writeFD(stdoutFD, b)
}

// writeFD performs one write(2) on fd. Split out from WriteStdout so
// tests can exercise the call against a pipe instead of the process's
// real standard output.
func writeFD(fd int, b []byte) error {
	n, err := unix.Write(fd, b)
	if err != nil {
		return fmt.Errorf("write to fd %d: %w", fd, err)
	}
	if n != len(b) {
		return fmt.Errorf("short write to fd %d: %d of %d bytes", fd, n, len(b))
	}
	return nil
}
