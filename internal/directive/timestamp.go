package directive

import (
	"fmt"
	"time"

	"github.com/alnah/go-blogmark/internal/toc"
	"github.com/yuin/goldmark/ast"
)

// timestamp renders :time[value] as a <time> element with a machine-readable
// datetime and a formatted display string.
func (t *Transformer) timestamp(in *Inline, e *env) Rewrite {
	value := toc.PlainText(in, e.source)
	ts, display, err := resolveDate(value, in.Attrs)
	if err != nil {
		e.state.Fail(fmt.Errorf("line %d: %s[%s]: %w", e.line(&in.Data), in.Name, value, err))
		return Rewrite{}
	}

	attrs := Attributes{Attr("datetime", ts.Format(time.RFC3339))}
	if class := in.Attrs.Value("class"); class != "" {
		attrs.AddClass(class)
	}
	in.Hint = &RenderHint{Tag: "time", Attrs: attrs}
	detachChildren(in)
	in.AppendChild(in, ast.NewString([]byte(display)))
	return Rewrite{}
}
