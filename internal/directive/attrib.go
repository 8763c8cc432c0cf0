package directive

import (
	"github.com/yuin/goldmark/ast"
)

// attributes forwards the directive's attributes. With is=TAG the directive
// becomes that element; otherwise its attributes are merged into its first
// child, which replaces it together with the remaining children.
func (t *Transformer) attributes(n Node, e *env) Rewrite {
	d := n.Directive()
	rest := d.Attrs.Without("is")
	tag, hasTag := d.Attrs.Get("is")
	if !hasTag && d.Shape == ShapeText {
		tag, hasTag = "span", true
	}

	if hasTag {
		hint, err := NewHint(tag, rest)
		if err != nil {
			t.warn("directive has invalid element", d, e, "error", err)
			return Rewrite{Descend: true}
		}
		d.Hint = hint
		return Rewrite{Descend: true}
	}

	children := detachChildren(n)
	if len(children) == 0 {
		return Rewrite{Nodes: []ast.Node{}}
	}
	first := children[0]
	for _, a := range rest {
		if !validAttrName(a.Name) {
			t.warn("directive attribute dropped", d, e, "attribute", a.Name)
			continue
		}
		if _, ok := first.AttributeString(a.Name); ok {
			continue
		}
		first.SetAttributeString(a.Name, []byte(a.Value))
	}
	return Rewrite{Nodes: children}
}
