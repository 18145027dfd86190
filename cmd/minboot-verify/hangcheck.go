// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/minboot-project/minboot/lib/clock"
	"github.com/minboot-project/minboot/lib/harness"
	"github.com/minboot-project/minboot/lib/process"
)

// hangCheckCmd asserts that a binary halts silently: no exit, no
// output, only the deadline kill ends it. This is the ad-hoc form of a
// mode:"hang" check definition, for poking at a binary without
// writing a file.
func hangCheckCmd(args []string, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("hang-check", pflag.ContinueOnError)
	timeout := flags.Duration("timeout", 10*time.Second, "how long the binary must stay silent before the kill")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: minboot-verify hang-check [flags] <binary>")
	}
	binary := flags.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := harness.New(harness.Options{Clock: clock.Real(), Logger: logger})
	result, err := h.Run(ctx, harness.RunSpec{Binary: binary, Timeout: *timeout})
	if err != nil {
		return err
	}

	violations := harness.CheckHang(result)
	printSummary(os.Stdout, binary, result, violations)
	if len(violations) > 0 {
		return &process.ExitError{Code: process.ExitViolation}
	}
	return nil
}
