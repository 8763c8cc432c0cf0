package main

import (
	"context"
	"errors"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/config"
	"github.com/alnah/go-blogmark/internal/hints"
)

// hintFor returns an actionable suggestion for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried, config.AppName)
	case errors.Is(err, ErrUnknownCodeStyle):
		return hints.ForStyleNotFound(blogmark.CodeStyles())
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, blogmark.ErrOrphanHeading):
		return hints.ForOrphanHeading()
	case errors.Is(err, blogmark.ErrInvalidDate):
		return hints.ForInvalidDate()
	case errors.Is(err, blogmark.ErrInvalidTimeZone):
		return hints.ForTimeZone()
	case errors.Is(err, blogmark.ErrInvalidFrontmatter):
		return hints.ForFrontmatter()
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}
