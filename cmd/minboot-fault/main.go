// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Minboot-fault demonstrates the bootstrap's terminal halt state: it
// invokes the fault hook immediately and spins forever, writing
// nothing to any stream and never returning a status. Kill it from
// outside; that is the contract. The harness's hang check uses this
// binary as its reference subject.
package main

import "github.com/minboot-project/minboot/lib/bootstrap"

func main() {
	bootstrap.Halt()
}
