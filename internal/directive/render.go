package directive

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}

// Renderer renders directive nodes and the elements produced by transforms.
type Renderer struct{}

var _ renderer.NodeRenderer = (*Renderer)(nil)

// NewRenderer returns a directive renderer.
func NewRenderer() renderer.NodeRenderer {
	return &Renderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlock, r.renderBlock)
	reg.Register(KindInline, r.renderInline)
	reg.Register(KindElement, r.renderElement)
	reg.Register(KindInlineElement, r.renderInlineElement)
}

func (r *Renderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Block)
	if n.Hint != nil {
		return renderHint(w, n.Hint, entering, true), nil
	}
	if n.Shape == ShapeLeaf {
		if entering {
			writeLiteral(w, n.Raw)
		}
		return ast.WalkSkipChildren, nil
	}
	if entering {
		writeLiteral(w, n.Raw)
	} else if n.Closed {
		writeLiteral(w, bytes.Repeat([]byte{':'}, n.Fence))
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderInline(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Inline)
	if n.Hint != nil {
		return renderHint(w, n.Hint, entering, false), nil
	}
	if entering {
		_, _ = w.Write(util.EscapeHTML(n.Raw))
	}
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderElement(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return renderHint(w, &node.(*Element).Hint, entering, true), nil
}

func (r *Renderer) renderInlineElement(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return renderHint(w, &node.(*InlineElement).Hint, entering, false), nil
}

func renderHint(w util.BufWriter, h *RenderHint, entering, block bool) ast.WalkStatus {
	void := voidElements[h.Tag]
	if entering {
		_ = w.WriteByte('<')
		_, _ = w.WriteString(h.Tag)
		writeAttributes(w, h.Attrs)
		_ = w.WriteByte('>')
		if void {
			if block {
				_ = w.WriteByte('\n')
			}
			return ast.WalkSkipChildren
		}
		return ast.WalkContinue
	}
	if !void {
		_, _ = w.WriteString("</")
		_, _ = w.WriteString(h.Tag)
		_ = w.WriteByte('>')
		if block {
			_ = w.WriteByte('\n')
		}
	}
	return ast.WalkContinue
}

func writeAttributes(w util.BufWriter, attrs Attributes) {
	for _, a := range attrs {
		_ = w.WriteByte(' ')
		_, _ = w.WriteString(a.Name)
		if a.Value == "" {
			continue
		}
		_, _ = w.WriteString(`="`)
		_, _ = w.Write(util.EscapeHTML([]byte(a.Value)))
		_ = w.WriteByte('"')
	}
}

func writeLiteral(w util.BufWriter, raw []byte) {
	_, _ = w.WriteString("<p>")
	_, _ = w.Write(util.EscapeHTML(raw))
	_, _ = w.WriteString("</p>\n")
}
