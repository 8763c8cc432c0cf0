package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-blogmark/internal/directive"
	"github.com/alnah/go-blogmark/internal/docctx"
	"github.com/alnah/go-blogmark/internal/highlight"
	"github.com/alnah/go-blogmark/internal/toc"
	"github.com/alnah/go-blogmark/internal/yamlutil"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/frontmatter"
)

// Sentinel errors for HTML conversion.
var (
	// ErrHTMLConversion indicates HTML conversion failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrFrontmatter indicates the YAML frontmatter could not be decoded.
	ErrFrontmatter = errors.New("invalid frontmatter")
)

// Transformer priorities. Lower values run first.
const (
	headingPriority = 100
	tocPriority     = 300
)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (*Document, error)
}

// Document is the result of converting one Markdown source.
type Document struct {
	HTML        string        // HTML fragment
	Headings    []toc.Heading // every heading, in document order
	Frontmatter *Frontmatter  // nil when the source has none
}

// Frontmatter is the YAML block at the top of a post.
type Frontmatter struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Date        string         `yaml:"date"`
	Tags        []string       `yaml:"tags"`
	Draft       bool           `yaml:"draft"`
	Extra       map[string]any `yaml:"-"`
}

var frontmatterKeys = []string{"title", "description", "date", "tags", "draft"}

// ConverterOptions configures a GoldmarkConverter.
type ConverterOptions struct {
	Directives  directive.Options
	Highlighter *highlight.Highlighter

	// TOCMinDepth and TOCMaxDepth bound the headings listed by [[toc]].
	TOCMinDepth int
	TOCMaxDepth int

	Emoji  bool // :shortcode: emoji
	Unsafe bool // pass raw HTML through

	Logger *slog.Logger
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
// It is safe for concurrent use.
type GoldmarkConverter struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

var _ HTMLConverter = (*GoldmarkConverter)(nil)

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes,
// frontmatter, directives, heading anchors and code highlighting.
func NewGoldmarkConverter(opts ConverterOptions) *GoldmarkConverter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Directives.Logger == nil {
		opts.Directives.Logger = logger
	}
	if opts.Highlighter == nil {
		opts.Highlighter = highlight.New(highlight.WithLogger(logger))
	}

	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
		&frontmatter.Extender{
			Formats: []frontmatter.Format{{Name: "YAML", Delim: '-', Unmarshal: yamlutil.UnmarshalFrontmatter}},
		},
		&directive.Extension{Options: opts.Directives},
		&highlight.Extension{Highlighter: opts.Highlighter},
	}
	if opts.Emoji {
		exts = append(exts, emoji.Emoji)
	}

	var rendererOpts []renderer.Option
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAttribute(), // {#id .class} on headings
			parser.WithASTTransformers(
				util.Prioritized(headingTransformer{}, headingPriority),
				util.Prioritized(&tocTransformer{minDepth: opts.TOCMinDepth, maxDepth: opts.TOCMaxDepth}, tocPriority),
			),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md, logger: logger}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (*Document, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		doc *Document
		err error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, r)}
			}
		}()
		doc, err := c.convert([]byte(content))
		done <- result{doc: doc, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.doc, r.err
	}
}

// convert parses and renders src with a fresh document state.
func (c *GoldmarkConverter) convert(src []byte) (*Document, error) {
	pc := docctx.NewContext()
	root := c.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	state := docctx.Get(pc)
	if err := state.Err(); err != nil {
		return nil, err
	}
	fm, err := decodeFrontmatter(pc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, src, root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return &Document{HTML: buf.String(), Headings: state.Headings, Frontmatter: fm}, nil
}

func decodeFrontmatter(pc parser.Context) (*Frontmatter, error) {
	data := frontmatter.Get(pc)
	if data == nil {
		return nil, nil
	}

	var fm Frontmatter
	if err := data.Decode(&fm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}
	var all map[string]any
	if err := data.Decode(&all); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}
	for _, k := range frontmatterKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		fm.Extra = all
	}
	return &fm, nil
}
