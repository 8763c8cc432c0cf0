package directive

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

type blockParser struct{}

var _ parser.BlockParser = (*blockParser)(nil)

// NewBlockParser returns a parser for leaf and container directives.
func NewBlockParser() parser.BlockParser {
	return &blockParser{}
}

func (p *blockParser) Trigger() []byte {
	return []byte{':'}
}

func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || line[pos] != ':' {
		return nil, parser.NoChildren
	}
	rest := util.TrimRightSpace(line[pos:])
	colons := countColons(rest)
	if colons < 2 {
		return nil, parser.NoChildren
	}
	h, n, ok := scanHeader(rest[colons:])
	if !ok || colons+n != len(rest) {
		return nil, parser.NoChildren
	}

	d := Data{
		Name:   h.name,
		Label:  h.label,
		Attrs:  h.attrs,
		Raw:    append([]byte(nil), rest...),
		Offset: segment.Start + pos,
	}
	reader.Advance(lineLen(line, segment))
	if colons == 2 {
		d.Shape = ShapeLeaf
		return NewBlock(d), parser.NoChildren
	}
	d.Shape = ShapeContainer
	d.Fence = colons
	return NewBlock(d), parser.HasChildren
}

func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	n := node.(*Block)
	if n.Shape == ShapeLeaf {
		return parser.Close
	}
	line, segment := reader.PeekLine()
	if line == nil {
		return parser.Close
	}
	if isClosingFence(line, n.Fence) {
		reader.Advance(lineLen(line, segment))
		n.Closed = true
		return parser.Close
	}
	return parser.Continue | parser.HasChildren
}

func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *blockParser) CanInterruptParagraph() bool {
	return true
}

func (p *blockParser) CanAcceptIndentedLine() bool {
	return false
}

// lineLen is the length of the line without its newline.
func lineLen(line []byte, segment text.Segment) int {
	n := segment.Len()
	if bytes.HasSuffix(line, []byte{'\n'}) {
		n--
	}
	return n
}

func countColons(b []byte) int {
	n := 0
	for n < len(b) && b[n] == ':' {
		n++
	}
	return n
}

func isClosingFence(line []byte, fence int) bool {
	w, pos := util.IndentWidth(line, 0)
	if w > 3 {
		return false
	}
	rest := util.TrimRightSpace(line[pos:])
	return len(rest) >= fence && countColons(rest) == len(rest)
}

type inlineParser struct{}

var _ parser.InlineParser = (*inlineParser)(nil)

// NewInlineParser returns a parser for text directives.
func NewInlineParser() parser.InlineParser {
	return &inlineParser{}
}

func (p *inlineParser) Trigger() []byte {
	return []byte{':'}
}

func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	prev := block.PrecendingCharacter()
	if prev == ':' || unicode.IsLetter(prev) || unicode.IsDigit(prev) {
		return nil
	}
	line, segment := block.PeekLine()
	if len(line) < 2 || line[1] == ':' {
		return nil
	}
	h, n, ok := scanHeader(line[1:])
	if !ok || (!h.hasLabel && !h.hasAttrs) {
		return nil
	}

	node := NewInline(Data{
		Name:   h.name,
		Shape:  ShapeText,
		Label:  strings.TrimSpace(h.label),
		Attrs:  h.attrs,
		Raw:    append([]byte(nil), line[:1+n]...),
		Offset: segment.Start,
	})
	if h.labelEnd > h.labelStart {
		label := text.NewSegment(segment.Start+1+h.labelStart, segment.Start+1+h.labelEnd)
		node.AppendChild(node, ast.NewTextSegment(label))
	}
	block.Advance(1 + n)
	return node
}
