package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-blogmark/internal/directive"
	"github.com/alnah/go-blogmark/internal/docctx"
	"github.com/alnah/go-blogmark/internal/toc"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// TOCPlaceholder is the paragraph text replaced by the page table of contents.
const TOCPlaceholder = "[[toc]]"

// headingTransformer gives every heading a unique id and records it in the
// document state. Ids written by the author are reserved before any slug is
// generated, so an explicit {#id} keeps its value wherever it appears; a
// repeated explicit id gets a numeric suffix. It runs before the directive
// transformer so that ::toc sees the full heading list.
type headingTransformer struct{}

var _ parser.ASTTransformer = headingTransformer{}

func (headingTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	state := docctx.Get(pc)
	source := reader.Source()

	var headings []*ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			headings = append(headings, h)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	ids := make([]string, len(headings))
	for i, h := range headings {
		v, ok := h.AttributeString("id")
		if !ok {
			continue
		}
		if id := attributeText(v); id != "" {
			ids[i] = state.Slugs.Reserve(id)
			if ids[i] != id {
				h.SetAttributeString("id", []byte(ids[i]))
			}
		}
	}

	for i, h := range headings {
		title := toc.PlainText(h, source)
		if ids[i] == "" {
			ids[i] = state.Slugs.Slugify(title)
			h.SetAttributeString("id", []byte(ids[i]))
		}
		state.Headings = append(state.Headings, toc.Heading{Depth: h.Level, ID: ids[i], Title: title})
	}
}

func attributeText(v any) string {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case string:
		return t
	}
	return ""
}

// tocTransformer replaces [[toc]] paragraphs with a navigation list of the
// document's headings.
type tocTransformer struct {
	minDepth int
	maxDepth int
}

var _ parser.ASTTransformer = (*tocTransformer)(nil)

func (t *tocTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	var placeholders []*ast.Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		p, ok := n.(*ast.Paragraph)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		if strings.TrimSpace(toc.PlainText(p, source)) == TOCPlaceholder && onlyText(p) {
			placeholders = append(placeholders, p)
		}
		return ast.WalkSkipChildren, nil
	})
	if len(placeholders) == 0 {
		return
	}

	state := docctx.Get(pc)
	tree, err := toc.Build(toc.Filter(state.Headings, t.minDepth, t.maxDepth), t.maxDepth)
	if err != nil {
		state.Fail(fmt.Errorf("%s: %w", TOCPlaceholder, err))
		return
	}
	for _, p := range placeholders {
		nav := directive.NewElement("nav",
			directive.Attr("class", "toc"),
			directive.Attr("aria-label", "Table of contents"))
		if len(tree) > 0 {
			nav.AppendChild(nav, toc.List(tree, "toc-list"))
		}
		parent := p.Parent()
		parent.ReplaceChild(parent, p, nav)
	}
}

func onlyText(p *ast.Paragraph) bool {
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind() != ast.KindText {
			return false
		}
	}
	return true
}
