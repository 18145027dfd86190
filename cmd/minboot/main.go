// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Minboot is the minimal process bootstrap: write "Hello, world!\n" to
// standard output with one raw system call, exit 0. No flags, no
// environment, no logger. Arguments are accepted per the native entry
// contract and ignored.
package main

import (
	"os"

	"github.com/minboot-project/minboot/lib/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run())
}
