// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/minboot-project/minboot/lib/harness"
	"github.com/minboot-project/minboot/lib/report"
)

var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printSummary renders one verification outcome for humans. The
// machine-readable form is the exit code and, when requested, the
// CBOR report.
func printSummary(w io.Writer, name string, result harness.Result, violations []harness.Violation) {
	verdict := passStyle.Render("PASS")
	if len(violations) > 0 {
		verdict = failStyle.Render("FAIL")
	}
	fmt.Fprintf(w, "%s  %s\n", verdict, name)

	fmt.Fprintf(w, "  %s %s", labelStyle.Render("outcome:"), result.Outcome)
	if result.Outcome == harness.OutcomeExited {
		fmt.Fprintf(w, " (status %d)", result.ExitCode)
	}
	if result.Outcome == harness.OutcomeSignaled {
		fmt.Fprintf(w, " (%s)", result.Signal)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  %s %d bytes stdout, %d bytes stderr, %v\n",
		labelStyle.Render("observed:"), len(result.Stdout), len(result.Stderr), result.Duration.Round(time.Millisecond))

	for _, v := range violations {
		fmt.Fprintf(w, "  %s %s\n", failStyle.Render("violation:"), v)
	}
}

// printReport renders a decoded report file.
func printReport(w io.Writer, r report.Report) {
	verdict := passStyle.Render("PASS")
	if !r.Pass {
		verdict = failStyle.Render("FAIL")
	}
	fmt.Fprintf(w, "%s  %s\n", verdict, r.Check)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("binary:"), r.Binary)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("digest:"), r.BinaryDigest)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("mode:"), r.Mode)
	fmt.Fprintf(w, "  %s %s", labelStyle.Render("outcome:"), r.Outcome)
	if r.Outcome == string(harness.OutcomeExited) {
		fmt.Fprintf(w, " (status %d)", r.ExitCode)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  %s %q\n", labelStyle.Render("stdout:"), r.Stdout)
	if len(r.Stderr) > 0 {
		fmt.Fprintf(w, "  %s %q\n", labelStyle.Render("stderr:"), r.Stderr)
	}
	fmt.Fprintf(w, "  %s %v at %s\n", labelStyle.Render("ran:"), r.Duration, r.Timestamp.Format("2006-01-02 15:04:05 MST"))

	for _, v := range r.Violations {
		fmt.Fprintf(w, "  %s %s\n", failStyle.Render("violation:"), v)
	}
}
