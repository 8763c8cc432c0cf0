package main

// Notes:
// - exitCodeFor: we test every sentinel the CLI maps, wrapped errors, and
//   the precedence applied to a joined batch error.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid settings", ErrInvalidSettings, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config not found struct", &config.NotFoundError{Name: "blog"}, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"settings wrapping a library error", fmt.Errorf("%w: %w", ErrInvalidSettings, blogmark.ErrInvalidTimeZone), ExitUsage},

		// Document errors (exit 4)
		{"orphan heading", blogmark.ErrOrphanHeading, ExitDocument},
		{"invalid date", blogmark.ErrInvalidDate, ExitDocument},
		{"invalid time zone", blogmark.ErrInvalidTimeZone, ExitDocument},
		{"invalid frontmatter", blogmark.ErrInvalidFrontmatter, ExitDocument},
		{"html conversion", blogmark.ErrHTMLConversion, ExitDocument},
		{"page render", blogmark.ErrPageRender, ExitDocument},
		{"empty markdown", blogmark.ErrEmptyMarkdown, ExitDocument},
		{"wrapped orphan heading", fmt.Errorf("post.md: %w", blogmark.ErrOrphanHeading), ExitDocument},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},

		// Batch precedence
		{"document beats io", errors.Join(ErrWriteHTML, blogmark.ErrInvalidDate), ExitDocument},
		{"usage beats document", errors.Join(blogmark.ErrOrphanHeading, ErrUsage), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeValues - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeValues(t *testing.T) {
	t.Parallel()

	codes := map[string]int{
		"ExitSuccess":  ExitSuccess,
		"ExitGeneral":  ExitGeneral,
		"ExitUsage":    ExitUsage,
		"ExitIO":       ExitIO,
		"ExitDocument": ExitDocument,
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if code < 0 || code >= 126 {
			t.Errorf("%s = %d, want 0 <= code < 126", name, code)
		}
		if other, dup := seen[code]; dup {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("success, general and usage codes must be 0, 1 and 2")
	}
}
