// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction.
//
// The harness measures how long a verified binary ran and decides when
// a hang check has waited long enough. Calling time.Now and time.After
// directly would make those decisions untestable, so production code
// takes a Clock and tests inject a deterministic fake.
//
// Production:
//
//	h := harness.New(harness.Options{Clock: clock.Real()})
//
// Tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	// ... start the operation under test ...
//	c.WaitForWaiters(1)
//	c.Advance(10 * time.Second)
package clock
