// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package report persists verification outcomes as deterministic CBOR
// files, so a CI job can archive what was observed and a later run can
// compare against it.
//
// Reports are written atomically (temporary file, fsync, rename) so a
// reader never sees a partial file, and encoded deterministically (see
// lib/codec) so two reports about identical observations are
// byte-identical.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minboot-project/minboot/lib/binhash"
	"github.com/minboot-project/minboot/lib/checkdef"
	"github.com/minboot-project/minboot/lib/codec"
	"github.com/minboot-project/minboot/lib/harness"
)

// Report records one verified run.
type Report struct {
	// Check is the check name from the definition.
	Check string `cbor:"check"`

	// Binary is the path that was executed.
	Binary string `cbor:"binary"`

	// BinaryDigest is the hex SHA256 of the binary file. Reports are
	// comparable only when their digests match.
	BinaryDigest string `cbor:"binary_digest"`

	// Mode is the check mode ("exit" or "hang").
	Mode string `cbor:"mode"`

	// Outcome is how the run ended ("exited", "hung", "signaled").
	Outcome string `cbor:"outcome"`

	// ExitCode is the observed status. Meaningful only for "exited".
	ExitCode int `cbor:"exit_code"`

	// Stdout and Stderr are the exact captured bytes.
	Stdout []byte `cbor:"stdout"`
	Stderr []byte `cbor:"stderr,omitempty"`

	// Duration is the observed wall-clock run time.
	Duration time.Duration `cbor:"duration"`

	// Violations lists every way the run fell short. Empty means the
	// check passed.
	Violations []string `cbor:"violations,omitempty"`

	// Pass is true when Violations is empty.
	Pass bool `cbor:"pass"`

	// Timestamp is when the run was observed.
	Timestamp time.Time `cbor:"timestamp"`
}

// New assembles a Report from a check, its observed result, and the
// verification violations.
func New(check *checkdef.Check, result harness.Result, violations []harness.Violation, now time.Time) Report {
	r := Report{
		Check:        check.Name,
		Binary:       check.Binary,
		BinaryDigest: binhash.FormatDigest(result.BinaryDigest),
		Mode:         string(check.EffectiveMode()),
		Outcome:      string(result.Outcome),
		ExitCode:     result.ExitCode,
		Stdout:       result.Stdout,
		Stderr:       result.Stderr,
		Duration:     result.Duration,
		Pass:         len(violations) == 0,
		Timestamp:    now,
	}
	for _, v := range violations {
		r.Violations = append(r.Violations, v.String())
	}
	return r
}

// Write atomically writes a report file: encode, write to a temporary
// file in the same directory, fsync, rename into place, then sync the
// parent directory so the rename survives power loss. Readers never
// see a partial report. The file is created with mode 0644.
func Write(path string, r Report) error {
	data, err := codec.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating temporary report file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary report file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary report file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary report file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming report file into place: %w", err)
	}

	if parent, err := os.Open(filepath.Dir(path)); err == nil {
		parent.Sync()
		parent.Close()
	}

	return nil
}

// Read reads and decodes a report file. When the file does not exist,
// the returned error matches errors.Is(err, os.ErrNotExist).
func Read(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("report %s: %w", path, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("reading report %s: %w", path, err)
	}

	var r Report
	if err := codec.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return r, nil
}
