// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package sysio provides a raw, unbuffered write to the standard output
// stream using the platform's primitive output facility: a single write
// system call on unix, a single WriteFile on the console handle on
// windows.
//
// The wrapper deliberately carries none of the machinery a general
// output path would have. There is no buffering, no formatting, no
// retry on EINTR, and no partial-write loop. The bootstrap contract
// treats the one output operation as atomic; when the operating system
// disagrees and performs a short write, WriteStdout reports it as an
// error rather than papering over it.
//
// Everything else in this repository that produces output (the verify
// CLI, the structured logger) goes through ordinary buffered streams.
// This package exists for the bootstrap binaries alone.
package sysio
