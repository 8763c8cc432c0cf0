package main

import (
	"errors"
	"os"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/config"
)

// Exit codes for the blogmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // All files rendered
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or options
	ExitIO       = 3 // File not found, permission denied
	ExitDocument = 4 // A post failed to render
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// For a batch, the first matching class below wins.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidSettings) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	// Document errors (exit 4)
	if errors.Is(err, blogmark.ErrOrphanHeading) ||
		errors.Is(err, blogmark.ErrInvalidDate) ||
		errors.Is(err, blogmark.ErrInvalidTimeZone) ||
		errors.Is(err, blogmark.ErrInvalidFrontmatter) ||
		errors.Is(err, blogmark.ErrHTMLConversion) ||
		errors.Is(err, blogmark.ErrPageRender) ||
		errors.Is(err, blogmark.ErrEmptyMarkdown) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}
