// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package sysio

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// WriteStdout writes b to the console's standard output handle with a
// single WriteFile call. A short write is returned as an error rather
// than retried; the bootstrap contract is one write of these exact
// bytes.
func WriteStdout(b []byte) error {
	handle, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return fmt.Errorf("resolving standard output handle: %w", err)
	}

	var written uint32
	if err := windows.WriteFile(handle, b, &written, nil); err != nil {
		return fmt.Errorf("writing to standard output handle: %w", err)
	}
	if int(written) != len(b) {
		return fmt.Errorf("short write to standard output: %d of %d bytes", written, len(b))
	}
	return nil
}
