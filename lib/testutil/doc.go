// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides channel helpers for tests that coordinate
// with goroutines: receive with a timeout safety valve instead of a
// bare channel read that can hang the whole test run.
//
// The timeout here is a hang guard, not an assertion about speed. Use
// generous values (seconds, not milliseconds); a passing test never
// waits the full timeout.
package testutil
