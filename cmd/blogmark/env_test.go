package main

// Notes:
// - DefaultEnv: we check every dependency is wired.
// - newLogger: we test the level selected by --quiet and --verbose.
// - setMaxProcs: we only check it does not panic; the GOMAXPROCS outcome
//   depends on the host cgroup.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	if env.Now == nil || env.Stdout == nil || env.Stderr == nil {
		t.Error("DefaultEnv() should set Now, Stdout and Stderr")
	}
	if env.Getenv == nil || env.Environ == nil {
		t.Error("DefaultEnv() should set Getenv and Environ")
	}
	if env.SetMaxProcs == nil {
		t.Error("DefaultEnv() should set SetMaxProcs")
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    slog.Level
	}{
		{"default shows warnings", false, false, slog.LevelWarn},
		{"quiet shows errors", true, false, slog.LevelError},
		{"verbose shows debug", false, true, slog.LevelDebug},
		{"quiet wins over verbose", true, true, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := newLogger(&bytes.Buffer{}, tt.quiet, tt.verbose)
			ctx := context.Background()

			if !logger.Enabled(ctx, tt.want) {
				t.Errorf("level %v should be enabled", tt.want)
			}
			if logger.Enabled(ctx, tt.want-1) {
				t.Errorf("level below %v should be disabled", tt.want)
			}
		})
	}
}

// Not parallel: maxprocs.Set may change GOMAXPROCS for the process.
func TestSetMaxProcs(t *testing.T) {
	var logs bytes.Buffer
	setMaxProcs(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
