package directive

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Extension adds generic directive syntax and the built-in transforms to a
// goldmark instance.
//
//	md := goldmark.New(goldmark.WithExtensions(&directive.Extension{}))
//
// Heading records used by ::toc must be collected by a transformer that runs
// before this one (priority below 200).
type Extension struct {
	Options Options
}

var _ goldmark.Extender = (*Extension)(nil)

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(NewBlockParser(), 150)),
		parser.WithInlineParsers(util.Prioritized(NewInlineParser(), 150)),
		parser.WithASTTransformers(util.Prioritized(NewTransformer(e.Options), 200)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(NewRenderer(), 100)),
	)
}
