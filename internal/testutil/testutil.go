// Package testutil provides shared filesystem fixtures for memo tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates a file under dir with the given content and modification
// time, creating parent directories as needed, and returns its path.
func WriteFile(tb testing.TB, dir, name, content string, mtime time.Time) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("creating parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	SetMtime(tb, path, mtime)
	return path
}

// SetMtime pins the file's access and modification times. Tests use fixed
// whole-second times so fingerprints are deterministic.
func SetMtime(tb testing.TB, path string, mtime time.Time) {
	tb.Helper()

	if err := os.Chtimes(path, mtime, mtime); err != nil {
		tb.Fatalf("setting mtime of %s: %v", path, err)
	}
}
