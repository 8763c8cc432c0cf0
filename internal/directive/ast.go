package directive

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// Shape is the syntactic form of a directive.
type Shape int

// Directive shapes.
const (
	ShapeText      Shape = iota // :name[label]{attrs}
	ShapeLeaf                   // ::name[label]{attrs}
	ShapeContainer              // :::name[label]{attrs} ... :::
)

func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeLeaf:
		return "leaf"
	case ShapeContainer:
		return "container"
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

// RenderHint tells the renderer which element a node becomes.
// Build hints with NewHint so that the tag and attribute names are valid.
type RenderHint struct {
	Tag   string
	Attrs Attributes
}

// Data is the parsed form of a directive.
type Data struct {
	Name  string
	Shape Shape
	Label string
	Attrs Attributes

	// Hint is set by a transform once the directive has been handled.
	// A nil hint renders the directive back as its source text.
	Hint *RenderHint

	// Raw is the directive's source text: the whole directive for text
	// directives, the opening line for leaf and container directives.
	Raw []byte

	// Fence is the number of colons of a container's opening fence.
	Fence int

	// Closed reports whether a container ended with its closing fence
	// rather than at the end of its parent.
	Closed bool

	// Offset is the byte offset of the directive in the document source.
	Offset int
}

// Node is implemented by both directive node types.
type Node interface {
	ast.Node
	Directive() *Data
}

// KindBlock is the NodeKind of leaf and container directives.
var KindBlock = ast.NewNodeKind("DirectiveBlock")

// KindInline is the NodeKind of text directives.
var KindInline = ast.NewNodeKind("DirectiveInline")

// KindElement is the NodeKind of synthesized block elements.
var KindElement = ast.NewNodeKind("DirectiveElement")

// KindInlineElement is the NodeKind of synthesized inline elements.
var KindInlineElement = ast.NewNodeKind("DirectiveInlineElement")

// Block is a leaf or container directive.
type Block struct {
	ast.BaseBlock
	Data
}

// NewBlock returns a block directive node.
func NewBlock(d Data) *Block {
	return &Block{Data: d}
}

// Kind implements ast.Node.Kind.
func (n *Block) Kind() ast.NodeKind { return KindBlock }

// Directive implements Node.
func (n *Block) Directive() *Data { return &n.Data }

// Dump implements ast.Node.Dump.
func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, dumpFields(&n.Data), nil)
}

// Inline is a text directive.
type Inline struct {
	ast.BaseInline
	Data
}

// NewInline returns a text directive node.
func NewInline(d Data) *Inline {
	return &Inline{Data: d}
}

// Kind implements ast.Node.Kind.
func (n *Inline) Kind() ast.NodeKind { return KindInline }

// Directive implements Node.
func (n *Inline) Directive() *Data { return &n.Data }

// Dump implements ast.Node.Dump.
func (n *Inline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, dumpFields(&n.Data), nil)
}

func dumpFields(d *Data) map[string]string {
	m := map[string]string{
		"Name":  d.Name,
		"Shape": d.Shape.String(),
		"Attrs": d.Attrs.String(),
	}
	if d.Label != "" {
		m["Label"] = d.Label
	}
	if d.Hint != nil {
		m["Hint"] = d.Hint.Tag
	}
	return m
}

// Element is a block-level HTML element produced by a transform.
type Element struct {
	ast.BaseBlock
	Hint RenderHint
}

// NewElement returns a block element. It panics on an invalid hint, so it is
// meant for tags and attribute names fixed in code.
func NewElement(tag string, attrs ...Attribute) *Element {
	return &Element{Hint: mustHint(tag, attrs)}
}

// Kind implements ast.Node.Kind.
func (n *Element) Kind() ast.NodeKind { return KindElement }

// Dump implements ast.Node.Dump.
func (n *Element) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Tag": n.Hint.Tag, "Attrs": n.Hint.Attrs.String()}, nil)
}

// InlineElement is an inline HTML element produced by a transform.
type InlineElement struct {
	ast.BaseInline
	Hint RenderHint
}

// NewInlineElement returns an inline element. Like NewElement it panics on an
// invalid hint.
func NewInlineElement(tag string, attrs ...Attribute) *InlineElement {
	return &InlineElement{Hint: mustHint(tag, attrs)}
}

// Kind implements ast.Node.Kind.
func (n *InlineElement) Kind() ast.NodeKind { return KindInlineElement }

// Dump implements ast.Node.Dump.
func (n *InlineElement) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Tag": n.Hint.Tag, "Attrs": n.Hint.Attrs.String()}, nil)
}

// detachChildren removes and returns the children of n, in order.
func detachChildren(n ast.Node) []ast.Node {
	var out []ast.Node
	for c := n.FirstChild(); c != nil; {
		next := c.NextSibling()
		n.RemoveChild(n, c)
		out = append(out, c)
		c = next
	}
	return out
}

// appendChildren appends nodes to parent.
func appendChildren(parent ast.Node, nodes []ast.Node) {
	for _, c := range nodes {
		parent.AppendChild(parent, c)
	}
}
