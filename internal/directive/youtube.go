package directive

import (
	"net/url"

	"github.com/yuin/goldmark/ast"
)

const (
	youtubeEmbedURL = "https://www.youtube-nocookie.com/embed/"
	youtubeAllow    = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
)

// youtube renders ::youtube[caption]{id=... start=...} as a privacy-enhanced
// player, either an iframe or a <lite-youtube> element.
func (t *Transformer) youtube(b *Block, e *env) Rewrite {
	id := b.Attrs.Value("id")
	if id == "" {
		t.warn("directive missing required attributes", &b.Data, e, "missing", "id")
		return Rewrite{}
	}
	caption := b.Label
	start := b.Attrs.Value("start")

	attrs := Attributes{Attr("class", "directive-youtube")}
	attrs.AddClass(b.Attrs.Value("class"))
	b.Hint = &RenderHint{Tag: "figure", Attrs: attrs}

	if t.opts.Server {
		src := youtubeEmbedURL + url.PathEscape(id)
		if start != "" {
			src += "?start=" + url.QueryEscape(start)
		}
		title := caption
		if title == "" {
			title = "YouTube video"
		}
		b.AppendChild(b, NewElement("iframe",
			Attr("class", "directive-youtube-player"),
			Attr("src", src),
			Attr("title", title),
			Attr("loading", "lazy"),
			Attr("frameborder", "0"),
			Attr("allow", youtubeAllow),
			Attr("allowfullscreen", ""),
		))
	} else {
		label := caption
		if label == "" {
			label = "Play video"
		}
		player := NewElement("lite-youtube", Attr("videoid", id), Attr("playlabel", label))
		if start != "" {
			player.Hint.Attrs.Set("params", "start="+url.QueryEscape(start))
		}
		b.AppendChild(b, player)
	}

	if caption != "" {
		fc := NewElement("figcaption")
		fc.AppendChild(fc, ast.NewString([]byte(caption)))
		b.AppendChild(b, fc)
	}
	return Rewrite{}
}
