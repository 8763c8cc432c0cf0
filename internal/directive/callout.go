package directive

import (
	"github.com/yuin/goldmark/ast"
)

// callout wraps the directive content in the callout markup:
// wrapper, hint block with the icon, content block led by the title.
func (t *Transformer) callout(b *Block, kind CalloutKind, e *env) Rewrite {
	label := kind.Label()
	title := b.Attrs.Value("title")
	content := detachChildren(b)

	switch {
	case title != "":
		label = title
	case b.Shape == ShapeContainer && b.Label != "":
		label = b.Label
	}
	if b.Shape == ShapeLeaf && b.Label != "" {
		p := ast.NewParagraph()
		p.AppendChild(p, ast.NewString([]byte(b.Label)))
		content = append(content, p)
	}

	attrs := Attributes{Attr("class", "callout callout-"+kind.String())}
	attrs.AddClass(b.Attrs.Value("class"))
	for _, a := range b.Attrs.Without("class", "title") {
		if validAttrName(a.Name) {
			attrs.Set(a.Name, a.Value)
		}
	}
	b.Hint = &RenderHint{Tag: t.opts.TagName, Attrs: attrs}

	body := NewElement("div", Attr("class", "callout-content"))
	appendChildren(body, leadIn(content, calloutTitle(label)))
	b.AppendChild(b, calloutHint(kind.Icon()))
	b.AppendChild(b, body)
	return Rewrite{Descend: true}
}

func calloutHint(icon string) *Element {
	hint := NewElement("div", Attr("class", "callout-hint"))
	hint.AppendChild(hint, NewInlineElement("span",
		Attr("class", "callout-icon icon-"+icon),
		Attr("aria-hidden", "true")))
	return hint
}

func calloutTitle(label string) *InlineElement {
	strong := NewInlineElement("strong", Attr("class", "callout-title"))
	strong.AppendChild(strong, ast.NewString([]byte(label)))
	return strong
}

// leadIn puts title at the start of the first paragraph of content, or in a
// paragraph of its own when content does not start with one.
func leadIn(content []ast.Node, title ast.Node) []ast.Node {
	if len(content) > 0 {
		if p, ok := content[0].(*ast.Paragraph); ok {
			if first := p.FirstChild(); first != nil {
				p.InsertBefore(p, first, title)
				p.InsertAfter(p, title, ast.NewString([]byte(" ")))
			} else {
				p.AppendChild(p, title)
			}
			return content
		}
	}
	p := ast.NewParagraph()
	p.AppendChild(p, title)
	return append([]ast.Node{p}, content...)
}
