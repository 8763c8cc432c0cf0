package directive

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-blogmark/internal/dateutil"
	"github.com/yuin/goldmark/ast"
)

// embed renders a quotation of external content with its attribution.
func (t *Transformer) embed(b *Block, e *env) Rewrite {
	if missing := b.Attrs.Missing("author", "src", "published"); len(missing) > 0 {
		t.warn("directive missing required attributes", &b.Data, e, "missing", strings.Join(missing, ","))
		return Rewrite{Descend: true}
	}
	src := b.Attrs.Value("src")
	author := b.Attrs.Value("author")
	published, display, err := resolveDate(b.Attrs.Value("published"), b.Attrs)
	if err != nil {
		e.state.Fail(fmt.Errorf("line %d: %s: %w", e.line(&b.Data), b.Name, err))
		return Rewrite{}
	}

	attrs := Attributes{Attr("class", "directive-embed")}
	attrs.AddClass(b.Attrs.Value("class"))
	if id := b.Attrs.Value("id"); id != "" {
		attrs.Set("id", id)
	}
	b.Hint = &RenderHint{Tag: "figure", Attrs: attrs}

	quote := NewElement("blockquote", Attr("cite", src))
	appendChildren(quote, detachChildren(b))

	link := NewInlineElement("a", Attr("href", src))
	link.AppendChild(link, ast.NewString([]byte(author)))
	stamp := NewInlineElement("time", Attr("datetime", published.Format(time.RFC3339)))
	stamp.AppendChild(stamp, ast.NewString([]byte(display)))

	caption := NewElement("figcaption", Attr("class", "directive-embed-caption"))
	caption.AppendChild(caption, ast.NewString([]byte("— ")))
	caption.AppendChild(caption, link)
	caption.AppendChild(caption, ast.NewString([]byte(", ")))
	caption.AppendChild(caption, stamp)

	b.AppendChild(b, quote)
	b.AppendChild(b, caption)
	return Rewrite{Descend: true}
}

// resolveDate parses value in the zone named by the tz attribute and formats
// it with the format attribute.
func resolveDate(value string, attrs Attributes) (time.Time, string, error) {
	loc, err := dateutil.LoadZone(attrs.Value("tz"))
	if err != nil {
		return time.Time{}, "", err
	}
	ts, err := dateutil.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, "", err
	}
	display, err := dateutil.Format(ts, attrs.Value("format"))
	if err != nil {
		return time.Time{}, "", err
	}
	return ts, display, nil
}
