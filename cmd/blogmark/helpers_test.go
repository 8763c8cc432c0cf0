package main

// Notes:
// - Test infrastructure shared by the CLI tests: an injectable environment
//   backed by buffers, a map-based getenv, a mock converter and file helpers.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-blogmark"
)

// ---------------------------------------------------------------------------
// Test Environment
// ---------------------------------------------------------------------------

// testEnv is an Environment whose output is captured.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment reading variables from vars only.
func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
			Stdout: stdout,
			Stderr: stderr,
			Getenv: func(key string) string { return vars[key] },
			Environ: func() []string {
				environ := make([]string, 0, len(vars))
				for k, v := range vars {
					environ = append(environ, k+"="+v)
				}
				return environ
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ---------------------------------------------------------------------------
// Mock Converter
// ---------------------------------------------------------------------------

// staticMockConverter returns a fixed result for every post.
type staticMockConverter struct {
	result *blogmark.Result
	err    error
}

func (m *staticMockConverter) Convert(_ context.Context, _ blogmark.Input) (*blogmark.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// ---------------------------------------------------------------------------
// File Helpers
// ---------------------------------------------------------------------------

// writeFiles creates files below dir, making parent directories as needed.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("MkdirAll(%s): %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", path, err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output should contain %q, got:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("output should not contain %q, got:\n%s", unwanted, got)
	}
}
