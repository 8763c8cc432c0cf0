package highlight

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Renderer renders fenced code blocks through a Highlighter.
type Renderer struct {
	h *Highlighter
}

var _ renderer.NodeRenderer = (*Renderer)(nil)

// NewRenderer returns a fenced code block renderer.
func NewRenderer(h *Highlighter) renderer.NodeRenderer {
	return &Renderer{h: h}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *Renderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	var lang, meta string
	if n.Info != nil {
		lang, meta = SplitInfo(string(n.Info.Segment.Value(source)))
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	if err := r.h.Highlight(w, code.String(), lang, meta); err != nil {
		return ast.WalkStop, err
	}
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}

// Extension installs fenced code highlighting in a goldmark instance.
// ProfileChroma delegates to goldmark-highlighting; other profiles use
// Renderer.
type Extension struct {
	Highlighter *Highlighter
}

var _ goldmark.Extender = (*Extension)(nil)

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	h := e.Highlighter
	if h == nil {
		h = New()
	}
	if h.Profile() == ProfileChroma {
		h.chromaExtension().Extend(m)
		return
	}
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(NewRenderer(h), 100)))
}

// chromaExtension configures goldmark-highlighting to emit the same outer
// container as Highlight.
func (h *Highlighter) chromaExtension() goldmark.Extender {
	style := h.cfg.style
	if _, err := lookupStyle(style); err != nil {
		h.cfg.logger.Warn("unknown highlight style, using default", "style", style)
		style = DefaultStyle
	}
	return highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithGuessLanguage(false),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(h.cfg.showLineNumbers),
		),
		highlighting.WithWrapperRenderer(func(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
			if !entering {
				_, _ = w.WriteString("</div>\n")
				return
			}
			lang := plainLanguage
			if l, ok := c.Language(); ok && len(l) > 0 {
				lang = h.Language(string(l))
			}
			escaped := util.EscapeHTML([]byte(lang))
			_, _ = w.WriteString(`<div class="highlight highlight-`)
			_, _ = w.Write(escaped)
			_, _ = w.WriteString(`">`)
			if h.cfg.showLanguage {
				_, _ = w.WriteString(`<div class="highlight-header"><span class="highlight-language">`)
				_, _ = w.Write(escaped)
				_, _ = w.WriteString(`</span></div>`)
			}
		}),
	)
}
