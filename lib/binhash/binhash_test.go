// Copyright 2026 The Minboot Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashFileStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary")
	if err := os.WriteFile(path, []byte("Hello, world!\n"), 0o755); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if first != second {
		t.Error("same file hashed to different digests")
	}

	// Known SHA256 of "Hello, world!\n".
	const want = "d9014c4624844aa5bac314773d6b689ad467fa4e1d1a50a1b8a99d5a95f72ff5"
	if got := FormatDigest(first); got != want {
		t.Errorf("digest = %s, want %s", got, want)
	}
}

func TestHashFileDistinguishesContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	os.WriteFile(a, []byte("Hello, world!\n"), 0o755)
	os.WriteFile(b, []byte("Hello, World!\n"), 0o755)

	digestA, err := HashFile(a)
	if err != nil {
		t.Fatalf("HashFile(a) failed: %v", err)
	}
	digestB, err := HashFile(b)
	if err != nil {
		t.Fatalf("HashFile(b) failed: %v", err)
	}
	if digestA == digestB {
		t.Error("different contents produced the same digest")
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("HashFile on a missing file returned nil error")
	}
}

func TestParseDigestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary")
	os.WriteFile(path, []byte("x"), 0o755)

	digest, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}

	parsed, err := ParseDigest(FormatDigest(digest))
	if err != nil {
		t.Fatalf("ParseDigest failed: %v", err)
	}
	if parsed != digest {
		t.Error("ParseDigest did not invert FormatDigest")
	}
}

func TestParseDigestRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "zz", "abcd"} {
		if _, err := ParseDigest(input); err == nil {
			t.Errorf("ParseDigest(%q) returned nil error", input)
		}
	}
}
