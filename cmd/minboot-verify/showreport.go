// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/minboot-project/minboot/lib/codec"
	"github.com/minboot-project/minboot/lib/report"
)

// showReportCmd decodes a saved CBOR report. --raw prints CBOR
// diagnostic notation instead of the formatted view, useful when a
// report was written by a newer tool with fields this one does not
// know.
func showReportCmd(args []string) error {
	flags := pflag.NewFlagSet("show-report", pflag.ContinueOnError)
	raw := flags.Bool("raw", false, "print CBOR diagnostic notation")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: minboot-verify show-report [flags] <file>")
	}
	path := flags.Arg(0)

	if *raw {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading report %s: %w", path, err)
		}
		diag, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnosing report %s: %w", path, err)
		}
		fmt.Println(diag)
		return nil
	}

	r, err := report.Read(path)
	if err != nil {
		return err
	}
	printReport(os.Stdout, r)
	return nil
}
