package main

// Notes:
// - runHelp: we test every command topic and the unknown-topic error.
// - Usage text content is checked loosely: headings and key flags only.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr error
	}{
		{"no topic", nil, []string{"Usage: blogmark <command>", "build", "css"}, nil},
		{"build", []string{"build"}, []string{"Usage: blogmark build", "--standalone", "--toc-min-depth", "BLOGMARK_CONFIG"}, nil},
		{"css", []string{"css"}, []string{"Usage: blogmark css", "--list", "--page"}, nil},
		{"version", []string{"version"}, []string{"Usage: blogmark version"}, nil},
		{"help", []string{"help"}, []string{"Usage: blogmark help"}, nil},
		{"unknown topic", []string{"convert"}, nil, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			err := runHelp(tt.args, env.Environment)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				assertContains(t, env.stderr.String(), "Usage: blogmark <command>")
				return
			}
			for _, want := range tt.want {
				assertContains(t, env.stdout.String(), want)
			}
		})
	}
}
