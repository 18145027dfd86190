// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Minboot-verify checks bootstrap binaries against their contract from
// the outside: run a binary, capture its streams, and compare what
// happened with what a check definition demands. It provides three
// subcommands: run (execute a JSONC check definition), hang-check
// (assert a binary halts silently until killed), and show-report
// (decode a saved CBOR report).
package main
