package blogmark

import (
	"errors"

	"github.com/alnah/go-blogmark/internal/dateutil"
	"github.com/alnah/go-blogmark/internal/directive"
	"github.com/alnah/go-blogmark/internal/highlight"
	"github.com/alnah/go-blogmark/internal/pipeline"
	"github.com/alnah/go-blogmark/internal/toc"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageRender     = pipeline.ErrPageRender

	// Document errors. A document failing with one of these renders nothing.
	ErrOrphanHeading      = toc.ErrOrphanHeading
	ErrInvalidDate        = dateutil.ErrInvalidDate
	ErrInvalidTimeZone    = dateutil.ErrInvalidTimeZone
	ErrInvalidFrontmatter = pipeline.ErrFrontmatter

	// Option validation errors.
	ErrInvalidTOCDepth    = errors.New("invalid TOC depth")
	ErrInvalidProfile     = highlight.ErrInvalidProfile
	ErrInvalidDateFormat  = dateutil.ErrInvalidDateFormat
	ErrInvalidTagName     = directive.ErrInvalidTag
	ErrUnknownCalloutKind = errors.New("unknown callout kind")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
