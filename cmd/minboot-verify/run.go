// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/minboot-project/minboot/lib/checkdef"
	"github.com/minboot-project/minboot/lib/clock"
	"github.com/minboot-project/minboot/lib/config"
	"github.com/minboot-project/minboot/lib/harness"
	"github.com/minboot-project/minboot/lib/process"
	"github.com/minboot-project/minboot/lib/report"
)

// runCmd executes one JSONC check definition: run the binary, verify
// the observation, print a summary, and optionally archive a report.
func runCmd(args []string, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to the tool configuration file")
	reportPath := flags.String("report", "", "write a CBOR report to this path")
	timeout := flags.Duration("timeout", 0, "override the check's timeout")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: minboot-verify run [flags] <check.jsonc>")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	check, err := checkdef.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	if err := check.Validate(); err != nil {
		return err
	}

	result, violations, err := observe(logger, check, resolveTimeout(*timeout, check, cfg))
	if err != nil {
		return err
	}

	if *reportPath != "" {
		path := resolveReportPath(*reportPath, cfg)
		if err := report.Write(path, report.New(check, result, violations, time.Now())); err != nil {
			return err
		}
		logger.Info("report written", "path", path)
	}

	printSummary(os.Stdout, check.Name, result, violations)
	if len(violations) > 0 {
		return &process.ExitError{Code: process.ExitViolation}
	}
	return nil
}

// observe runs the check's binary and verifies the result according to
// the check's mode. Interrupt signals cancel the observation.
func observe(logger *slog.Logger, check *checkdef.Check, timeout time.Duration) (harness.Result, []harness.Violation, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := harness.New(harness.Options{Clock: clock.Real(), Logger: logger})
	result, err := h.Run(ctx, harness.RunSpec{Binary: check.Binary, Timeout: timeout})
	if err != nil {
		return harness.Result{}, nil, err
	}

	switch check.EffectiveMode() {
	case checkdef.ModeHang:
		return result, harness.CheckHang(result), nil
	default:
		return result, harness.Verify(result, harness.Expectation{
			Stdout:     check.EffectiveStdout(),
			ExitStatus: check.EffectiveExitStatus(),
		}), nil
	}
}

// resolveTimeout picks the deadline: the --timeout flag wins, then the
// check definition, then the configured default.
func resolveTimeout(flagValue time.Duration, check *checkdef.Check, cfg *config.Config) time.Duration {
	if flagValue > 0 {
		return flagValue
	}
	if check.Timeout != "" {
		return check.EffectiveTimeout()
	}
	return cfg.EffectiveDefaultTimeout()
}

// resolveReportPath places bare report names into the configured
// report directory; explicit paths are used as given.
func resolveReportPath(path string, cfg *config.Config) string {
	if cfg.ReportDir == "" || filepath.Base(path) != path {
		return path
	}
	return filepath.Join(cfg.ReportDir, path)
}
