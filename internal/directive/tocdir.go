package directive

import (
	"fmt"
	"strconv"

	"github.com/alnah/go-blogmark/internal/toc"
)

// DefaultTOCTitle is the title of a ::toc callout.
const DefaultTOCTitle = "Contents"

// tableOfContents renders a collapsible table of contents of the document's headings.
func (t *Transformer) tableOfContents(b *Block, e *env) Rewrite {
	maxDepth := t.opts.TOCMaxDepth
	if v := b.Attrs.Value("depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > toc.MaxLevel {
			t.warn("directive has invalid depth", &b.Data, e, "depth", v)
		} else {
			maxDepth = n
		}
	}
	headings := toc.Filter(e.state.Headings, t.opts.TOCMinDepth, maxDepth)
	tree, err := toc.Build(headings, maxDepth)
	if err != nil {
		e.state.Fail(fmt.Errorf("line %d: %s: %w", e.line(&b.Data), b.Name, err))
		return Rewrite{}
	}

	title := b.Attrs.Value("title")
	if title == "" {
		title = b.Label
	}
	if title == "" {
		title = DefaultTOCTitle
	}

	attrs := Attributes{Attr("class", "callout callout-toc")}
	attrs.AddClass(b.Attrs.Value("class"))
	attrs.Set("x-data", "{ open: true }")
	b.Hint = &RenderHint{Tag: t.opts.TagName, Attrs: attrs}

	intro := detachChildren(b)
	body := NewElement("div", Attr("class", "callout-content"))
	toggle := NewInlineElement("button",
		Attr("type", "button"),
		Attr("class", "callout-toc-toggle"),
		Attr("x-on:click", "open = !open"),
		Attr("x-bind:aria-expanded", "open"))
	toggle.AppendChild(toggle, calloutTitle(title))
	body.AppendChild(body, toggle)
	appendChildren(body, intro)

	nav := NewElement("nav", Attr("x-show", "open"))
	if len(tree) > 0 {
		nav.AppendChild(nav, toc.List(tree, "toc-list"))
	}
	body.AppendChild(body, nav)

	b.AppendChild(b, calloutHint("list"))
	b.AppendChild(b, body)
	return Rewrite{Descend: true}
}
