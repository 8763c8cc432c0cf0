package directive

import (
	"bytes"
	"log/slog"

	"github.com/alnah/go-blogmark/internal/docctx"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// DefaultTagName is the element that wraps a callout.
const DefaultTagName = "aside"

// Options configures the directive transforms.
type Options struct {
	// TagName is the callout wrapper element. Empty means DefaultTagName.
	TagName string

	// Server renders video embeds as iframes. Otherwise they become
	// <lite-youtube> elements upgraded on the client.
	Server bool

	// CalloutAliases adds directive names for callout kinds.
	CalloutAliases map[string]CalloutKind

	// TOCMinDepth and TOCMaxDepth bound the headings listed by ::toc.
	// Zero means 2 and 6.
	TOCMinDepth int
	TOCMaxDepth int

	Logger *slog.Logger
}

// Rewrite is the result of a transform. A nil Nodes keeps the directive
// node in place; otherwise the node is replaced by Nodes. Descend tells the
// dispatcher to visit the resulting nodes' children.
type Rewrite struct {
	Nodes   []ast.Node
	Descend bool
}

// Transformer dispatches directive nodes to their transforms.
type Transformer struct {
	opts     Options
	registry *registry
	logger   *slog.Logger
}

var _ parser.ASTTransformer = (*Transformer)(nil)

// NewTransformer returns a Transformer. It is safe for concurrent use.
func NewTransformer(opts Options) *Transformer {
	if opts.TagName == "" || !validTag(opts.TagName) {
		opts.TagName = DefaultTagName
	}
	if opts.TOCMinDepth <= 0 {
		opts.TOCMinDepth = 2
	}
	if opts.TOCMaxDepth <= 0 {
		opts.TOCMaxDepth = 6
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{
		opts:     opts,
		registry: newRegistry(opts.CalloutAliases),
		logger:   logger,
	}
}

// Lookup returns the kind a directive name resolves to.
func (t *Transformer) Lookup(name string) Kind {
	k, _ := t.registry.lookup(name)
	return k
}

// env is the per-document state of one Transform call.
type env struct {
	source []byte
	state  *docctx.State
}

// Transform implements parser.ASTTransformer.
func (t *Transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	e := &env{source: reader.Source(), state: docctx.Get(pc)}
	t.visit(doc, e)
}

func (t *Transformer) visit(parent ast.Node, e *env) {
	for child := parent.FirstChild(); child != nil; {
		next := child.NextSibling()
		n, ok := child.(Node)
		if !ok {
			t.visit(child, e)
			child = next
			continue
		}

		rw := t.apply(n, e)
		if rw.Nodes == nil {
			if rw.Descend {
				t.visit(child, e)
			}
			child = next
			continue
		}
		for _, r := range rw.Nodes {
			parent.InsertBefore(parent, child, r)
		}
		parent.RemoveChild(parent, child)
		if rw.Descend {
			for _, r := range rw.Nodes {
				t.visit(r, e)
			}
		}
		child = next
	}
}

func (t *Transformer) apply(n Node, e *env) Rewrite {
	d := n.Directive()
	kind, callout := t.registry.lookup(d.Name)
	if kind != KindUnknown && !accepts(kind, d.Shape) {
		t.logger.Debug("directive shape not supported",
			"directive", d.Name, "shape", d.Shape.String(), "line", e.line(d))
		return Rewrite{Descend: true}
	}
	switch kind {
	case KindCallout:
		return t.callout(n.(*Block), callout, e)
	case KindEmbed:
		return t.embed(n.(*Block), e)
	case KindTime:
		return t.timestamp(n.(*Inline), e)
	case KindYouTube:
		return t.youtube(n.(*Block), e)
	case KindAttributes:
		return t.attributes(n, e)
	case KindTOC:
		return t.tableOfContents(n.(*Block), e)
	}
	return Rewrite{Descend: true}
}

func accepts(k Kind, s Shape) bool {
	switch k {
	case KindCallout, KindTOC:
		return s == ShapeContainer || s == ShapeLeaf
	case KindEmbed:
		return s == ShapeContainer
	case KindTime:
		return s == ShapeText
	case KindYouTube:
		return s == ShapeLeaf
	case KindAttributes:
		return s == ShapeContainer || s == ShapeText
	}
	return false
}

// line is the 1-based source line of the directive.
func (e *env) line(d *Data) int {
	if d.Offset > len(e.source) {
		return 0
	}
	return bytes.Count(e.source[:d.Offset], []byte{'\n'}) + 1
}

func (t *Transformer) warn(msg string, d *Data, e *env, args ...any) {
	t.logger.Warn(msg, append([]any{"directive", d.Name, "line", e.line(d)}, args...)...)
}
