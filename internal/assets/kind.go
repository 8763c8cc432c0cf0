package assets

// assetKind describes where one family of assets lives and how a missing
// file is reported.
type assetKind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = assetKind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = assetKind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// path returns the slash-separated location of name relative to a base.
// Callers validate name first.
func (k assetKind) path(name string) string {
	return k.dir + "/" + name + k.ext
}
