// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for the minboot
// binaries: the one legitimate place for raw stderr output before the
// structured logger exists, and typed exit codes so main() can
// translate command errors into process status without string
// matching.
//
// The bootstrap binaries (cmd/minboot, cmd/minboot-fault) do not use
// this package. Their whole point is that nothing is linked in; error
// reporting machinery included.
package process
