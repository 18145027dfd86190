// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// minboot-verify drives bootstrap binaries through their verification
// checks.
//
// Usage:
//
//	minboot-verify run [flags] <check.jsonc>
//	minboot-verify hang-check [flags] <binary>
//	minboot-verify show-report [flags] <file>
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/minboot-project/minboot/lib/process"
	"github.com/minboot-project/minboot/lib/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(process.ExitUsage)
	}

	// Set up logging.
	logLevel := slog.LevelInfo
	if os.Getenv("MINBOOT_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runCmd(args, logger)
	case "hang-check":
		err = hangCheckCmd(args, logger)
	case "show-report":
		err = showReportCmd(args)
	case "version", "--version", "-v":
		fmt.Printf("minboot-verify %s\n", version.Info())
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(process.ExitUsage)
	}

	if err != nil {
		process.Fatal(err)
	}
}

func printUsage() {
	fmt.Print(`minboot-verify - Verify bootstrap binaries against their contract

USAGE
    minboot-verify <command> [flags] [args...]

COMMANDS
    run          Run a JSONC check definition against its binary
    hang-check   Assert a binary halts silently until killed
    show-report  Decode a saved CBOR verification report
    version      Show version

EXAMPLES
    # Verify the canonical bootstrap
    minboot-verify run checks/hello-exit.jsonc

    # Verify and archive the observation
    minboot-verify run --report hello.report checks/hello-exit.jsonc

    # Confirm the fault binary halts without output
    minboot-verify hang-check --timeout 2s bin/minboot-fault

    # Inspect an archived report
    minboot-verify show-report hello.report

EXIT CODES
    0  every check passed
    1  a check ran but the contract was violated
    2  the invocation itself failed (bad flags, unreadable check)

ENVIRONMENT
    MINBOOT_CONFIG  Path to the tool configuration file (YAML)
    MINBOOT_DEBUG   Enable debug logging
`)
}
