// Package toc builds a nested table of contents from a flat heading list.
package toc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// ErrOrphanHeading indicates a heading shallower than the current TOC root
// level, which cannot be placed in the tree.
var ErrOrphanHeading = errors.New("orphan heading")

// MaxLevel is the deepest heading level HTML supports.
const MaxLevel = 6

// Heading is one heading of a rendered document.
type Heading struct {
	Depth int    // 1-6
	ID    string // anchor ID, unique within the document
	Title string // plain text
}

// Node is a heading with its nested sub-headings.
type Node struct {
	Heading
	Children []*Node
}

// Filter keeps headings with minDepth <= Depth <= maxDepth.
// A non-positive bound is treated as unbounded on that side.
func Filter(headings []Heading, minDepth, maxDepth int) []Heading {
	if minDepth <= 0 {
		minDepth = 1
	}
	if maxDepth <= 0 {
		maxDepth = MaxLevel
	}
	out := make([]Heading, 0, len(headings))
	for _, h := range headings {
		if h.Depth < minDepth || h.Depth > maxDepth {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Build nests headings by depth, dropping any deeper than maxDepth
// (maxDepth <= 0 means MaxLevel).
//
// Headings at the depth of the last root become new roots; deeper headings
// are attached below the last root, descending its chain of last children
// while those are shallower than the heading. A heading shallower than the
// last root returns ErrOrphanHeading.
func Build(headings []Heading, maxDepth int) ([]*Node, error) {
	if maxDepth <= 0 {
		maxDepth = MaxLevel
	}

	var roots []*Node
	for _, h := range headings {
		if h.Depth > maxDepth {
			continue
		}
		node := &Node{Heading: h}

		if len(roots) == 0 {
			roots = append(roots, node)
			continue
		}

		last := roots[len(roots)-1]
		switch {
		case h.Depth == last.Depth:
			roots = append(roots, node)
		case h.Depth > last.Depth:
			parent := last
			for len(parent.Children) > 0 {
				child := parent.Children[len(parent.Children)-1]
				if child.Depth >= h.Depth {
					break
				}
				parent = child
			}
			parent.Children = append(parent.Children, node)
		default:
			return nil, fmt.Errorf("%w: %q (h%d) sits above the table of contents root level h%d",
				ErrOrphanHeading, h.Title, h.Depth, last.Depth)
		}
	}
	return roots, nil
}

// List converts a TOC tree into a tight goldmark list of links, nesting a
// sub-list for every node with children. class, when set, is applied to
// every list level.
func List(nodes []*Node, class string) *ast.List {
	list := ast.NewList('-')
	list.IsTight = true
	if class != "" {
		list.SetAttributeString("class", []byte(class))
	}

	for _, n := range nodes {
		item := ast.NewListItem(2)

		block := ast.NewTextBlock()
		link := ast.NewLink()
		link.Destination = []byte("#" + n.ID)
		link.AppendChild(link, ast.NewString([]byte(n.Title)))
		block.AppendChild(block, link)
		item.AppendChild(item, block)

		if len(n.Children) > 0 {
			item.AppendChild(item, List(n.Children, class))
		}
		list.AppendChild(list, item)
	}
	return list
}

// PlainText returns the text content of an inline container such as a
// heading, without markup.
func PlainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
